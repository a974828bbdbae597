package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/cpcf/timkit/render"
)

// Default locations inside the model root.
const (
	DefaultConfigFile      = "model/config.yml"
	DefaultContextTemplate = "model/context.yml.tmpl"
	DefaultPlanTemplate    = "model/templates.yml.tmpl"
)

// Model is the model-level configuration document. Everything in it is
// optional; a model directory without a config file renders with defaults.
type Model struct {
	// Seed pins the mother seed for this model. Host-supplied seeds take
	// precedence.
	Seed *int64 `yaml:"seed"`

	// ContextTemplate and PlanTemplate override where the two pipeline
	// templates live, relative to the model root.
	ContextTemplate string `yaml:"context_template"`
	PlanTemplate    string `yaml:"plan_template"`

	// Engine carries the template engine options.
	Engine render.Options `yaml:"engine"`
}

func DefaultModel() Model {
	return Model{
		ContextTemplate: DefaultContextTemplate,
		PlanTemplate:    DefaultPlanTemplate,
	}
}

func (m *Model) Validate() error {
	for _, p := range []string{m.ContextTemplate, m.PlanTemplate} {
		if p == "" {
			continue
		}
		if path.IsAbs(p) || !fs.ValidPath(path.Clean(p)) {
			return fmt.Errorf("template path %q must stay relative to the model root", p)
		}
	}
	return nil
}

// LoadModel reads the model config from root if present, filling unset
// template paths with their defaults.
func LoadModel(root string) (Model, error) {
	m := DefaultModel()

	cfgPath := filepath.Join(root, filepath.FromSlash(DefaultConfigFile))
	if _, err := os.Stat(cfgPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("failed to probe model config: %w", err)
	}

	if err := LoadYAML(cfgPath, &m); err != nil {
		return m, err
	}
	if m.ContextTemplate == "" {
		m.ContextTemplate = DefaultContextTemplate
	}
	if m.PlanTemplate == "" {
		m.PlanTemplate = DefaultPlanTemplate
	}
	return m, nil
}
