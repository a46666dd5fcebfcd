package vitug

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	root := newTestTree(t)
	d, _ := newTestDispatcher(t, root, DefaultSettings())

	lines, err := Lines(d.Active())
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		"",
		" > Cargo.toml",
		"   README.md",
		"   data.tar",
		"   empty/",
		"   src/",
	}, lines)

	press(t, d, "3jl")
	lines, err = Lines(d.Active())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "empty"), "", " > ../"}, lines)

	press(t, d, "hkl")
	lines, err = Lines(d.Active())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "data.tar"), "", " > a/"}, lines)

	press(t, d, "l")
	lines, err = Lines(d.Active())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "data.tar") + "/a/", "", " > b.txt"}, lines)
}

func TestRowName(t *testing.T) {
	root := newTestTree(t)
	d, _ := newTestDispatcher(t, root, DefaultSettings())
	assert.Equal(t, "src/", RowName(d.Active(), filepath.Join(root, "src")))
	assert.Equal(t, "README.md", RowName(d.Active(), filepath.Join(root, "README.md")))
}
