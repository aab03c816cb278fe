package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaults(t *testing.T) {
	info := Get()
	assert.Equal(t, "0.1.0-dev", info.Version)
}

func TestGetCanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	// as if set via -ldflags
	Version = " 1.2.3 "
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	assert.Equal(t, Info{Version: "1.2.3", GitCommit: "abc123def456", BuildDate: "2024-01-15T10:30:00Z"}, Get())

	Version = ""
	assert.Equal(t, "dev", Get().Version)
}

func TestColored(t *testing.T) {
	assert.Equal(t, "1.2.3-rc1", Colored("1.2.3-rc1", false))
	assert.Equal(t, "dev", Colored("dev", true))

	out := Colored("1.2.3-rc1", true)
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasSuffix(out, "-rc1"))
	for _, part := range []string{"1", "2", "3"} {
		assert.Contains(t, out, part)
	}
}
