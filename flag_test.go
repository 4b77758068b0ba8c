package byteunit

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestSizeFlag(t *testing.T) {
	fs := newFlagSet()
	size := SizeFlag(fs, "size", 1_000, "maximum size")

	f := fs.Lookup("size")
	require.NotNil(t, f)
	assert.Equal(t, "1 KB", f.DefValue)
	assert.Equal(t, "size", f.Value.Type())
	assert.Equal(t, Size(1_000), *size)

	require.NoError(t, fs.Parse([]string{"--size", "1.5 GiB"}))
	assert.Equal(t, Size(1_610_612_736), *size)
	assert.Equal(t, "1.61 GB", f.Value.String())
}

func TestSizeVarP(t *testing.T) {
	fs := newFlagSet()
	var size Size
	SizeVarP(fs, &size, "cache-size", "c", 0, "cache size")

	require.NoError(t, fs.Parse([]string{"-c", "10MiB"}))
	assert.Equal(t, Size(10_485_760), size)

	require.NoError(t, fs.Parse([]string{"--cache-size=2kb"}))
	assert.Equal(t, Size(2_000), size)
}

func TestSizeFlagInvalid(t *testing.T) {
	fs := newFlagSet()
	var size Size
	SizeVar(fs, &size, "size", 123, "size")

	err := fs.Parse([]string{"--size=12.34XB"})
	assert.ErrorContains(t, err, ErrInvalidFormat.Error())
	assert.Equal(t, Size(123), size)
}
