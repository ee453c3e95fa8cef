package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	saved := Version
	defer func() { Version = saved }()

	Version = ""
	assert.Equal(t, "dev", GetVersion())
	assert.True(t, IsDevBuild())

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
	assert.False(t, IsDevBuild())
}

func TestGetFullVersion(t *testing.T) {
	saved := []string{Version, Commit, Date, BuiltBy}
	defer func() { Version, Commit, Date, BuiltBy = saved[0], saved[1], saved[2], saved[3] }()

	Version, Commit, Date, BuiltBy = "v0.1.0", "abc123", "2026-01-02", "goreleaser"
	assert.Equal(t, "v0.1.0 (commit: abc123, built: 2026-01-02, by: goreleaser)", GetFullVersion())
}
