package minforth

// Option configures an Interpreter.
type Option interface{ apply(interp *Interpreter) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(interp *Interpreter) {
	for _, opt := range opts {
		opt.apply(interp)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(interp *Interpreter) {
	interp.logfn = logfn
}

type stepLimitOption int

func (lim stepLimitOption) apply(interp *Interpreter) {
	interp.stepLimit = int(lim)
}
