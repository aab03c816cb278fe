package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the symcalc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Info is a trimmed snapshot of the build variables.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Get returns the current build info; an empty Version reads as "dev".
func Get() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

// Colored renders major.minor.patch in three colors; the pre-release suffix
// and anything that is not dotted semver are left plain.
func Colored(v string, enabled bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if !enabled || len(parts) != 3 {
		return v
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(majorColor, parts[0]) + "." + paint(minorColor, parts[1]) + "." + paint(patchColor, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
