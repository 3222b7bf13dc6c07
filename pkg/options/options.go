package options

// DefaultOptions match the reference behaviour: tokens of one or two
// letters and all-caps tokens (acronyms, initialisms) are not
// spell-checked.
var DefaultOptions = CheckerOptions{
	IgnoreShortWords:   true,
	IgnoreAllCapsWords: true,
}

type CheckerOptions struct {
	IgnoreShortWords   bool
	IgnoreAllCapsWords bool
}

type Option interface {
	Apply(options *CheckerOptions)
}

type FuncOption struct {
	ops func(options *CheckerOptions)
}

func (w FuncOption) Apply(conf *CheckerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CheckerOptions)) *FuncOption {
	return &FuncOption{ops: f}
}

func WithIgnoreShortWords(v bool) Option {
	return NewFuncOption(func(options *CheckerOptions) {
		options.IgnoreShortWords = v
	})
}

func WithIgnoreAllCapsWords(v bool) Option {
	return NewFuncOption(func(options *CheckerOptions) {
		options.IgnoreAllCapsWords = v
	})
}
