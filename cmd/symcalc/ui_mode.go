package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// uiMode is the value of --ui on repl and batch.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

var uiModes = []uiMode{uiModeAuto, uiModeOn, uiModeOff}

func readUIMode(value string) (uiMode, error) {
	v := uiMode(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return uiModeAuto, nil
	}
	if !slices.Contains(uiModes, v) {
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return v, nil
}

func uiModeFlag(cmd *cobra.Command) (uiMode, error) {
	raw, err := cmd.Flags().GetString("ui")
	if err != nil {
		return "", fmt.Errorf("failed to get ui flag: %w", err)
	}
	return readUIMode(raw)
}

// active: auto needs every listed stream on a terminal. The repl checks
// stdin and stdout, the batch progress view only stderr.
func (m uiMode) active(streams ...*os.File) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	for _, f := range streams {
		if !isTerminal(f) {
			return false
		}
	}
	return len(streams) > 0
}
