package engine

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cpcf/timkit/postprocess"
	"github.com/cpcf/timkit/render"
	"github.com/cpcf/timkit/state"
	"github.com/cpcf/timkit/write"
)

type renderer struct {
	logger   *slog.Logger
	env      *render.Environment
	writer   write.Writer
	post     *postprocess.Chain
	manifest *state.Manifest
}

// run executes the plan's tasks in order, stopping at the first failure.
func (r *renderer) run(fsys fs.FS, destRoot string, plan *Plan, ctx *Context, inputs map[string]any) error {
	for _, task := range plan.Tasks {
		if err := r.renderTask(fsys, destRoot, task, ctx, inputs); err != nil {
			return &RenderTaskError{Src: task.Src, Dest: task.Dest, Err: err}
		}
	}
	return nil
}

func (r *renderer) renderTask(fsys fs.FS, destRoot string, task Task, ctx *Context, inputs map[string]any) error {
	var content []byte

	switch task.Mode {
	case TaskCopy:
		raw, err := fs.ReadFile(fsys, task.Src)
		if err != nil {
			return err
		}
		content = raw
	default:
		out, err := r.env.RenderFile(fsys, task.Src, map[string]any{
			"context": ctx.Map(),
			"inputs":  inputs,
			"local":   task.Local,
		})
		if err != nil {
			return err
		}
		content = []byte(out)
	}

	dest := filepath.Join(destRoot, filepath.FromSlash(task.Dest))

	if r.post.HasProcessors() {
		processed, err := r.post.Process(dest, content)
		if err != nil {
			return err
		}
		content = processed
	}

	err := r.writer.Write(dest, content, write.Options{CreateDirs: true, Overwrite: true})
	if err != nil {
		return err
	}

	r.manifest.Record(task.Dest, task.Src, task.Mode.String(), content)
	r.logger.Debug("rendered template", "src", task.Src, "dest", task.Dest, "mode", task.Mode.String())
	return nil
}
