//go:build unit

package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect_GitEnvironmentWins(t *testing.T) {
	// Git environment context takes precedence over the invocation name,
	// even when the name suggests another backend.
	kind, err := Select("hg-dolly", Environment{GitExecPath: "/usr/lib/git-core"})
	assert.NoError(t, err)
	assert.Equal(t, Git, kind)
}

func TestSelect_HgEnvironment(t *testing.T) {
	kind, err := Select("dolly", Environment{HgExecutable: "/usr/bin/hg"})
	assert.NoError(t, err)
	assert.Equal(t, Mercurial, kind)
}

func TestSelect_GitEnvironmentBeatsHgEnvironment(t *testing.T) {
	env := Environment{
		GitExecPath:  "/usr/lib/git-core",
		HgExecutable: "/usr/bin/hg",
	}

	kind, err := Select("dolly", env)
	assert.NoError(t, err)
	assert.Equal(t, Git, kind)
}

func TestSelect_InvocationName(t *testing.T) {
	tests := []struct {
		name           string
		invocationName string
		want           Kind
	}{
		{
			name:           "git symlink",
			invocationName: "git-dolly",
			want:           Git,
		},
		{
			name:           "hg symlink",
			invocationName: "hg-dolly",
			want:           Mercurial,
		},
		{
			name:           "bare git name",
			invocationName: "git",
			want:           Git,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Select(tt.invocationName, Environment{})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestSelect_Unsupported(t *testing.T) {
	_, err := Select("cvs-dolly", Environment{})
	assert.ErrorIs(t, err, ErrUnsupportedVCS)
	assert.ErrorContains(t, err, "cvs")
}

func TestSelect_UnsupportedBareName(t *testing.T) {
	_, err := Select("dolly", Environment{})
	assert.ErrorIs(t, err, ErrUnsupportedVCS)
	assert.ErrorContains(t, err, "dolly")
}
