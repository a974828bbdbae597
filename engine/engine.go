// Package engine orchestrates the two-phase model rendering pipeline:
// resolve the context template to a value mapping, resolve the plan template
// against that context, then render every planned file into the destination
// tree.
package engine

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cpcf/timkit/config"
	"github.com/cpcf/timkit/generator"
	"github.com/cpcf/timkit/logging"
	"github.com/cpcf/timkit/postprocess"
	"github.com/cpcf/timkit/render"
	"github.com/cpcf/timkit/seed"
	"github.com/cpcf/timkit/state"
	"github.com/cpcf/timkit/write"
)

// Engine runs one render session at a time. It owns its generator registry,
// template environments and seed store for the duration of a session;
// construct one engine per concurrent session.
type Engine struct {
	logger   *slog.Logger
	seed     *int64
	inputs   map[string]any
	extras   []generator.Generator
	registry *generator.Registry
	post     *postprocess.Chain
	writer   write.Writer
	phase    Phase
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.Nop(),
		post:   postprocess.NewChain(),
		writer: write.NewFileWriter(),
		phase:  PhaseInit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is what a successful render session hands back to the host: the
// resolved context for inspection, the expanded plan and the manifest of
// written files. Nothing in it is persisted by the engine itself.
type Result struct {
	Seed     int64
	Context  *Context
	Plan     *Plan
	Manifest *state.Manifest
}

// Phase reports how far the last Render call progressed.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Render instantiates the model at modelRoot into destRoot. Any failure
// aborts the remaining work; files already written stay on disk.
func (e *Engine) Render(modelRoot, destRoot string) (*Result, error) {
	e.phase = PhaseInit

	res, err := e.render(modelRoot, destRoot)
	if err != nil {
		e.phase = PhaseFailed
		return nil, err
	}
	e.phase = PhaseDone
	return res, nil
}

func (e *Engine) render(modelRoot, destRoot string) (*Result, error) {
	cfg, err := config.LoadModel(modelRoot)
	if err != nil {
		return nil, err
	}

	reg, err := e.buildRegistry()
	if err != nil {
		return nil, err
	}

	mother := e.resolveSeed(cfg)
	seeds := seed.NewStore(mother)

	// The context environment carries only generators and built-in
	// globals; the plan environment carries neither. Engine options from
	// the model config apply to file rendering alone.
	contextEnv, err := render.NewEnvironment(render.Options{}, reg, seeds)
	if err != nil {
		return nil, err
	}
	fileEnv, err := render.NewEnvironment(cfg.Engine, reg, seeds)
	if err != nil {
		return nil, err
	}
	planEnv, err := render.NewEnvironment(render.Options{}, nil, nil)
	if err != nil {
		return nil, err
	}

	fsys := os.DirFS(modelRoot)

	e.logger.Info("resolving context", "template", cfg.ContextTemplate, "seed", mother)
	ctx, err := resolveContext(contextEnv, fsys, cfg.ContextTemplate, e.inputs, reg)
	if err != nil {
		return nil, err
	}
	e.phase = PhaseContextResolved

	e.logger.Info("resolving plan", "template", cfg.PlanTemplate)
	plan, err := resolvePlan(planEnv, fsys, cfg.PlanTemplate, ctx, e.inputs)
	if err != nil {
		return nil, err
	}
	e.phase = PhasePlanResolved

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination root %q: %w", destRoot, err)
	}

	e.phase = PhaseRendering
	manifest := state.NewManifest(mother)
	r := &renderer{
		logger:   e.logger,
		env:      fileEnv,
		writer:   e.writer,
		post:     e.post,
		manifest: manifest,
	}
	if err := r.run(fsys, destRoot, plan, ctx, e.inputs); err != nil {
		return nil, err
	}

	e.logger.Info("render complete", "files", manifest.Len(), "dest", destRoot)
	return &Result{Seed: mother, Context: ctx, Plan: plan, Manifest: manifest}, nil
}

func (e *Engine) buildRegistry() (*generator.Registry, error) {
	reg := e.registry
	if reg == nil {
		reg = generator.Builtins()
	}
	for _, gen := range e.extras {
		if err := reg.Register(gen); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (e *Engine) resolveSeed(cfg config.Model) int64 {
	if e.seed != nil {
		return *e.seed
	}
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return seed.New()
}
