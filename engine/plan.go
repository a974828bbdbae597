package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/cpcf/timkit/render"
)

// Entry types recognized in the rendered plan document.
const (
	EntryFile = "file"
	EntryDir  = "dir"
)

// Entry is one template-to-destination mapping from the plan document. A
// file entry renders a single template; a dir entry mirrors a directory
// tree, rendering every contained file, optionally restricted to declared
// Contents and with Copy globs copied verbatim instead of rendered.
type Entry struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Src      string         `yaml:"src"`
	Dest     string         `yaml:"dest"`
	Extra    map[string]any `yaml:"extra"`
	Copy     []string       `yaml:"copy"`
	Contents []Entry        `yaml:"contents"`
}

func (e *Entry) kind() string {
	if e.Type == "" {
		return EntryFile
	}
	return e.Type
}

func (e *Entry) validate() error {
	switch e.kind() {
	case EntryFile:
		if len(e.Copy) > 0 || len(e.Contents) > 0 {
			return fmt.Errorf("file entry %q must not carry copy globs or contents", e.Src)
		}
	case EntryDir:
	default:
		return fmt.Errorf("entry %q has unknown type %q", e.Src, e.Type)
	}
	if e.Src == "" {
		return fmt.Errorf("plan entry %q is missing src", e.Name)
	}
	if e.Dest == "" {
		return fmt.Errorf("plan entry %q is missing dest", e.Name)
	}
	for i := range e.Contents {
		if err := e.Contents[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// TaskMode says whether a task's source is rendered or copied verbatim.
type TaskMode int

const (
	TaskRender TaskMode = iota
	TaskCopy
)

func (m TaskMode) String() string {
	if m == TaskCopy {
		return "copy"
	}
	return "render"
}

// Task is one fully resolved render unit. Src is relative to the model
// root, Dest relative to the destination root; both are validated to stay
// inside their roots before any file is written.
type Task struct {
	Src   string
	Dest  string
	Mode  TaskMode
	Local map[string]any
}

// Plan is the ordered outcome of rendering the plan template. Tasks execute
// in order; later tasks may overwrite files written by earlier ones.
type Plan struct {
	Entries []Entry
	Tasks   []Task
}

// resolvePlan renders the plan template against the resolved context and
// expands the parsed entries into the ordered task list. The context's
// top-level keys form the template's variable namespace; the full mapping
// is also reachable as .context.
func resolvePlan(env *render.Environment, fsys fs.FS, planPath string, ctx *Context, inputs map[string]any) (*Plan, error) {
	data := make(map[string]any, ctx.Len()+2)
	for k, v := range ctx.Map() {
		data[k] = v
	}
	data["context"] = ctx.Map()
	data["inputs"] = inputs

	rendered, err := env.RenderFile(fsys, planPath, data)
	if err != nil {
		return nil, &PlanTemplateError{Path: planPath, Err: err}
	}

	var entries []Entry
	if err := yaml.Unmarshal([]byte(rendered), &entries); err != nil {
		return nil, &PlanRenderError{Path: planPath, Err: err}
	}
	for i := range entries {
		if err := entries[i].validate(); err != nil {
			return nil, &PlanRenderError{Path: planPath, Err: err}
		}
	}

	tasks, err := expandEntries(fsys, entries, ".", ".", nil)
	if err != nil {
		var traversal *PathTraversalError
		if errors.As(err, &traversal) {
			return nil, err
		}
		return nil, &PlanRenderError{Path: planPath, Err: err}
	}

	return &Plan{Entries: entries, Tasks: tasks}, nil
}

func expandEntries(fsys fs.FS, entries []Entry, srcBase, destBase string, parentExtra map[string]any) ([]Task, error) {
	var tasks []Task

	for i := range entries {
		e := &entries[i]

		src, err := joinInsideRoot(srcBase, e.Src, "the model root")
		if err != nil {
			return nil, err
		}
		dest, err := joinInsideRoot(destBase, e.Dest, "the destination root")
		if err != nil {
			return nil, err
		}
		local := mergeExtra(parentExtra, e.Extra)

		if e.kind() == EntryFile {
			tasks = append(tasks, Task{Src: src, Dest: dest, Mode: TaskRender, Local: local})
			continue
		}

		info, err := fs.Stat(fsys, src)
		if err != nil {
			return nil, fmt.Errorf("directory entry %q: %w", e.Src, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("directory entry %q: src is not a directory", e.Src)
		}

		copied := make(map[string]bool)
		for _, glob := range e.Copy {
			matches, err := fs.Glob(fsys, path.Join(src, glob))
			if err != nil {
				return nil, fmt.Errorf("copy glob %q: %w", glob, err)
			}
			for _, m := range matches {
				info, err := fs.Stat(fsys, m)
				if err != nil {
					return nil, err
				}
				if info.IsDir() {
					continue
				}
				tasks = append(tasks, Task{
					Src:   m,
					Dest:  path.Join(dest, relPath(src, m)),
					Mode:  TaskCopy,
					Local: local,
				})
				copied[m] = true
			}
		}

		if len(e.Contents) > 0 {
			sub, err := expandEntries(fsys, e.Contents, src, dest, local)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, sub...)
			continue
		}

		// no declared contents: mirror the whole tree
		err = fs.WalkDir(fsys, src, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || copied[p] {
				return nil
			}
			tasks = append(tasks, Task{
				Src:   p,
				Dest:  path.Join(dest, relPath(src, p)),
				Mode:  TaskRender,
				Local: local,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("directory entry %q: %w", e.Src, err)
		}
	}

	return tasks, nil
}

// joinInsideRoot joins a plan-supplied relative path onto base and rejects
// any result that escapes the root base belongs to.
func joinInsideRoot(base, rel, root string) (string, error) {
	if path.IsAbs(rel) {
		return "", &PathTraversalError{Path: rel, Root: root}
	}
	joined := path.Join(base, rel)
	if joined != "." && !fs.ValidPath(joined) {
		return "", &PathTraversalError{Path: rel, Root: root}
	}
	return joined, nil
}

func relPath(base, target string) string {
	if base == "." {
		return target
	}
	return target[len(base)+1:]
}

func mergeExtra(parent, extra map[string]any) map[string]any {
	if len(parent) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(parent)+len(extra))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
