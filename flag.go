package byteunit

import "github.com/spf13/pflag"

var _ pflag.Value = (*Size)(nil)

// Set parses a size string into s.
func (s *Size) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}

// Type returns the flag type name shown in usage output.
func (s *Size) Type() string {
	return "size"
}

// SizeVar defines a size flag with the given name, default value and usage,
// storing its value in p.
func SizeVar(fs *pflag.FlagSet, p *Size, name string, value Size, usage string) {
	SizeVarP(fs, p, name, "", value, usage)
}

// SizeVarP is like SizeVar, but accepts a shorthand letter.
func SizeVarP(fs *pflag.FlagSet, p *Size, name, shorthand string, value Size, usage string) {
	*p = value
	fs.VarP(p, name, shorthand, usage)
}

// SizeFlag defines a size flag and returns a pointer to its value.
func SizeFlag(fs *pflag.FlagSet, name string, value Size, usage string) *Size {
	p := new(Size)
	SizeVar(fs, p, name, value, usage)
	return p
}
