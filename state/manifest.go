// Package state tracks what a render session wrote.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

// Entry describes one rendered or copied output file.
type Entry struct {
	Path         string `json:"path"`
	TemplatePath string `json:"template_path"`
	Mode         string `json:"mode"`
	Hash         string `json:"hash"`
	Size         int64  `json:"size"`
}

// Manifest is the ordered record of a render session's outputs. Entries
// appear in write order and carry content hashes, so two manifests from the
// same seed and model can be compared byte for byte.
type Manifest struct {
	Seed    int64   `json:"seed"`
	Entries []Entry `json:"entries"`
}

func NewManifest(seed int64) *Manifest {
	return &Manifest{Seed: seed}
}

// Record appends an entry for content written to path.
func (m *Manifest) Record(path, templatePath, mode string, content []byte) {
	sum := sha256.Sum256(content)
	m.Entries = append(m.Entries, Entry{
		Path:         path,
		TemplatePath: templatePath,
		Mode:         mode,
		Hash:         hex.EncodeToString(sum[:]),
		Size:         int64(len(content)),
	})
}

func (m *Manifest) Len() int {
	return len(m.Entries)
}

// Fingerprint condenses the manifest into a single hash over all entry
// paths and content hashes, in order.
func (m *Manifest) Fingerprint() string {
	h := sha256.New()
	for _, e := range m.Entries {
		fmt.Fprintf(h, "%s\x00%s\x00", e.Path, e.Hash)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// WriteTo serializes the manifest as indented JSON.
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}
