package parse

type parseOpts struct {
	validate bool
}

type ParseOption func(*parseOpts)

// ParseValidate controls whether a parsed document is also checked with a
// full TOML decoder. It is on by default.
func ParseValidate(v bool) ParseOption {
	return func(o *parseOpts) { o.validate = v }
}
