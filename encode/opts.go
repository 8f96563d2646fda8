package encode

type encOpts struct {
	indent string
	colors *Colors
}

type EncodeOption func(*encOpts)

// EncodeIndent sets the indent unit for JSON output and the outline
// view. The default is two spaces.
func EncodeIndent(s string) EncodeOption {
	return func(o *encOpts) { o.indent = s }
}

// EncodeColors enables colorized outline output.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

func mkOpts(opts []EncodeOption) *encOpts {
	o := &encOpts{indent: "  "}
	for _, f := range opts {
		f(o)
	}
	return o
}
