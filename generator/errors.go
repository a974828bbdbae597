package generator

import "fmt"

// UnknownGeneratorError reports a template referencing a generator name that
// was never registered.
type UnknownGeneratorError struct {
	Name string
}

func (e *UnknownGeneratorError) Error() string {
	return fmt.Sprintf("unknown generator %q", e.Name)
}

// DuplicateGeneratorError reports a second registration under an already
// taken generator name.
type DuplicateGeneratorError struct {
	Name string
}

func (e *DuplicateGeneratorError) Error() string {
	return fmt.Sprintf("generator %q is already registered", e.Name)
}

// InvalidGeneratorArgumentError reports an out-of-range or otherwise
// unusable parameter passed to a generator entry point. Param names the
// offending parameter so the TIM author can find the call site.
type InvalidGeneratorArgumentError struct {
	Generator string
	Param     string
	Reason    string
}

func (e *InvalidGeneratorArgumentError) Error() string {
	return fmt.Sprintf("generator %q: invalid argument %q: %s", e.Generator, e.Param, e.Reason)
}

func invalidArg(generator, param, format string, args ...any) error {
	return &InvalidGeneratorArgumentError{
		Generator: generator,
		Param:     param,
		Reason:    fmt.Sprintf(format, args...),
	}
}
