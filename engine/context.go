package engine

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpcf/timkit/generator"
	"github.com/cpcf/timkit/render"
)

// Context is the variable mapping produced by rendering the context
// template. It preserves the key order of the rendered document and is
// consumed read-only by the plan resolver and every file render.
type Context struct {
	keys   []string
	values map[string]any
}

// Keys returns the top-level keys in document order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Context) Value(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Map exposes the context as template data. Callers must not mutate it.
func (c *Context) Map() map[string]any {
	return c.values
}

func (c *Context) Len() int {
	return len(c.keys)
}

// resolveContext renders the context template in one pass, with generator
// instances as the only non-literal value source, and parses the result as
// a YAML mapping. Keys of the document are not visible to sibling
// expressions; a template referencing one fails to expand.
func resolveContext(env *render.Environment, fsys fs.FS, path string, inputs map[string]any, reg *generator.Registry) (*Context, error) {
	rendered, err := env.RenderFile(fsys, path, map[string]any{"inputs": inputs})
	if err != nil {
		if name, ok := unknownGeneratorName(err, reg); ok {
			return nil, &ContextTemplateError{Path: path, Err: &generator.UnknownGeneratorError{Name: name}}
		}
		return nil, &ContextTemplateError{Path: path, Err: err}
	}

	ctx, err := parseContextDocument(rendered)
	if err != nil {
		return nil, &ContextRenderError{Path: path, Err: err}
	}
	return ctx, nil
}

func parseContextDocument(rendered string) (*Context, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("rendered document is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rendered document is not a mapping (line %d)", root.Line)
	}

	ctx := &Context{values: make(map[string]any, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("value for key %q: %w", keyNode.Value, err)
		}
		if _, dup := ctx.values[keyNode.Value]; !dup {
			ctx.keys = append(ctx.keys, keyNode.Value)
		}
		ctx.values[keyNode.Value] = value
	}
	return ctx, nil
}

// topLevelFieldRE extracts the first segment of the failing node of a
// template execution error when that node is a multi-segment field chain,
// e.g. `doesnotexist` from `at <.doesnotexist.Int>`. Generator references
// are always chained (`.name.Method`), so a bare single-segment access like
// `at <.foo>` is a plain expansion failure, not a generator lookup.
var topLevelFieldRE = regexp.MustCompile(`at <\.([A-Za-z_][A-Za-z0-9_]*)\.`)

// unknownGeneratorName classifies a template expansion failure: a chained
// access whose missing first segment is neither a registered generator nor
// a reserved data name means the template referenced a generator that does
// not exist.
func unknownGeneratorName(err error, reg *generator.Registry) (string, bool) {
	if reg == nil {
		return "", false
	}
	msg := err.Error()
	m := topLevelFieldRE.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	name := m[1]
	if !strings.Contains(msg, fmt.Sprintf("map has no entry for key %q", name)) {
		return "", false
	}
	if name == "inputs" || reg.Has(name) {
		return "", false
	}
	return name, true
}
