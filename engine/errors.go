package engine

import "fmt"

// ContextTemplateError reports a context template that failed to expand
// (undefined variable, filter error, bad syntax).
type ContextTemplateError struct {
	Path string
	Err  error
}

func (e *ContextTemplateError) Error() string {
	return fmt.Sprintf("context template %s failed to expand: %v", e.Path, e.Err)
}

func (e *ContextTemplateError) Unwrap() error { return e.Err }

// ContextRenderError reports a context template whose rendered text is not a
// valid structured mapping.
type ContextRenderError struct {
	Path string
	Err  error
}

func (e *ContextRenderError) Error() string {
	return fmt.Sprintf("context template %s did not render to a mapping: %v", e.Path, e.Err)
}

func (e *ContextRenderError) Unwrap() error { return e.Err }

// PlanTemplateError reports a plan template that failed to expand.
type PlanTemplateError struct {
	Path string
	Err  error
}

func (e *PlanTemplateError) Error() string {
	return fmt.Sprintf("plan template %s failed to expand: %v", e.Path, e.Err)
}

func (e *PlanTemplateError) Unwrap() error { return e.Err }

// PlanRenderError reports a plan template whose rendered text is not a valid
// sequence of plan entries.
type PlanRenderError struct {
	Path string
	Err  error
}

func (e *PlanRenderError) Error() string {
	return fmt.Sprintf("plan template %s did not render to a valid plan: %v", e.Path, e.Err)
}

func (e *PlanRenderError) Unwrap() error { return e.Err }

// PathTraversalError reports a plan entry whose resolved path escapes its
// root. No file is written for such an entry.
type PathTraversalError struct {
	Path string
	Root string
}

func (e *PathTraversalError) Error() string {
	return fmt.Sprintf("path %q escapes %s", e.Path, e.Root)
}

// RenderTaskError reports the first failing render task. The session stops
// there; output already written stays on disk.
type RenderTaskError struct {
	Src  string
	Dest string
	Err  error
}

func (e *RenderTaskError) Error() string {
	return fmt.Sprintf("render task %s -> %s failed: %v", e.Src, e.Dest, e.Err)
}

func (e *RenderTaskError) Unwrap() error { return e.Err }
