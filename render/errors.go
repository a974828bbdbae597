package render

import "fmt"

// TemplateConfigError reports an unusable engine configuration, such as an
// extra filter or global whose name collides with a built-in. It is raised
// at environment construction time, never during rendering.
type TemplateConfigError struct {
	Name   string
	Reason string
}

func (e *TemplateConfigError) Error() string {
	return fmt.Sprintf("template config: %q: %s", e.Name, e.Reason)
}
