package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/xjava/format"
	"github.com/dhamidi/xjava/java/parser"
	"github.com/dhamidi/xjava/project"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var statements bool
	var expand bool
	var level string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a .java file, or statements from stdin, and dump the tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := format.New(outputFormat, cmd.OutOrStdout())
			if enc == nil {
				return fmt.Errorf("unknown format %q (want one of %s)", outputFormat, strings.Join(format.Names, ", "))
			}

			var input io.Reader = cmd.InOrStdin()
			dir := "."
			var opts []parser.Option
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open source: %w", err)
				}
				defer f.Close()
				input = f
				dir = filepath.Dir(args[0])
				opts = append(opts, parser.WithFile(args[0]))
			}

			proj, err := project.LoadFrom(dir)
			if err != nil {
				return err
			}
			config := proj.Config
			if level != "" {
				config.LanguageLevel = level
			}
			opts = append(opts, parser.WithConfig(config))

			var p *parser.Parser
			if statements || len(args) == 0 {
				p = parser.ParseStatements(input, opts...)
			} else {
				p = parser.ParseCompilationUnit(input, opts...)
			}
			root := p.Finish()
			if root == nil {
				return fmt.Errorf("parse: %w", p.Err())
			}
			if expand {
				p.ExpandAll(root)
			}

			if err := enc.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVarP(&statements, "statements", "s", false, "parse the input as a statement list")
	cmd.Flags().BoolVarP(&expand, "expand", "e", false, "expand all lazy blocks before printing")
	cmd.Flags().StringVarP(&level, "level", "l", "", "Java language level, overriding the project config")

	return cmd
}
