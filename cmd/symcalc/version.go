package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symcalc/internal/version"
)

type versionPayload struct {
	Tool string `json:"tool"`
	version.Info
}

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "output", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show symcalc build fingerprints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()
		if !versionShowHash && !versionShowFull {
			info.GitCommit = ""
		}
		if !versionShowDate && !versionShowFull {
			info.BuildDate = ""
		}

		switch strings.ToLower(versionFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(versionPayload{Tool: "symcalc", Info: info})
		case "pretty":
			s := settingsFrom(cmd)
			renderVersionPretty(cmd.OutOrStdout(), info, s.useColor(os.Stdout))
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(out io.Writer, info version.Info, color bool) {
	fmt.Fprintf(out, "symcalc %s\n", version.Colored(info.Version, color))
	if versionShowHash || versionShowFull {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if versionShowDate || versionShowFull {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
