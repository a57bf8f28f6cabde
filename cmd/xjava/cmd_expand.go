package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/xjava/format"
	"github.com/dhamidi/xjava/java/codebase"
	"github.com/dhamidi/xjava/project"
)

func newExpandCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "expand <file> <line>",
		Short: "Parse the lazy block starting on a line and dump it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return fmt.Errorf("invalid line %q", args[1])
			}
			enc := format.New(outputFormat, cmd.OutOrStdout())
			if enc == nil {
				return fmt.Errorf("unknown format %q (want one of %s)", outputFormat, strings.Join(format.Names, ", "))
			}

			proj, err := project.LoadFrom(filepath.Dir(args[0]))
			if err != nil {
				return err
			}
			info, err := codebase.New(proj).ScanFile(args[0])
			if err != nil {
				return err
			}
			block := info.ExpandAt(line)
			if block == nil {
				return fmt.Errorf("%s:%d: no lazy block starts on this line", args[0], line)
			}
			return enc.Encode(block)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
