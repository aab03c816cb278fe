package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symcalc/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the batch result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := openCache(settingsFrom(cmd))
		if err != nil {
			return err
		}
		if err := c.DropAll(); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", c.Dir())
		return nil
	},
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := settingsFrom(cmd).cfg.CacheDir()
		if err != nil {
			return fmt.Errorf("cache dir: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd, cacheDirCmd)
}

func openCache(s *settings) (*driver.DiskCache, error) {
	dir, err := s.cfg.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	c, err := driver.OpenDiskCache(dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}
