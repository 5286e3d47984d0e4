package minforth

import (
	"github.com/jcorbin/minforth/internal/panicerr"
)

// New creates an Interpreter with an empty definition table.
func New(opts ...Option) *Interpreter {
	var interp Interpreter
	Options(opts...).apply(&interp)
	return &interp
}

// EvaluateProgram runs lines in order against a fresh stack, returning the
// final stack bottom to top. Definitions made by lines persist in interp for
// later calls.
//
// The first failure stops evaluation; it is returned wrapped in a LineError,
// with no partial stack.
func (interp *Interpreter) EvaluateProgram(lines []string) ([]int, error) {
	var values []int
	err := panicerr.Recover("minforth", func() (err error) {
		values, err = interp.evaluateProgram(lines)
		return err
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Definitions returns the defined word names, lower-cased, in the order they
// were first defined.
func (interp *Interpreter) Definitions() []string {
	names := make([]string, len(interp.dict.names))
	copy(names, interp.dict.names)
	return names
}

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStepLimit bounds the number of tokens one EvaluateProgram call may
// execute, counting those executed by word expansion; 0 means no limit.
func WithStepLimit(limit int) Option { return stepLimitOption(limit) }
