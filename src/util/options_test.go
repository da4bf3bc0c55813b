package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCommandDefaultsAndFlags verifies the cobra wiring: default output
// path, and that each flag populates the Options value RunE receives.
func TestNewCommandDefaultsAndFlags(t *testing.T) {
	var got Options
	cmd := NewCommand(func(opt Options) error {
		got = opt
		return nil
	})
	cmd.SetArgs([]string{"-d", "-o", "custom.ll", "--tokens", "a.c", "b.c"})
	require.NoError(t, cmd.Execute())

	assert.True(t, got.Debug)
	assert.True(t, got.Tokens)
	assert.Equal(t, "custom.ll", got.Out)
	assert.Equal(t, []string{"a.c", "b.c"}, got.Src)
}

// TestNewCommandRequiresAtLeastOneSource verifies the positional-argument
// validator rejects a call with no source files.
func TestNewCommandRequiresAtLeastOneSource(t *testing.T) {
	cmd := NewCommand(func(Options) error { return nil })
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

// TestNewCommandDefaultOutfile verifies the outfile flag defaults to out.ll
// when not supplied.
func TestNewCommandDefaultOutfile(t *testing.T) {
	var got Options
	cmd := NewCommand(func(opt Options) error {
		got = opt
		return nil
	})
	cmd.SetArgs([]string{"a.c"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "out.ll", got.Out)
}
