package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/xjava/java/codebase"
	"github.com/dhamidi/xjava/project"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Reparse .java files as they change and print their errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			proj, err := project.LoadFrom(dir)
			if err != nil {
				return err
			}

			c := codebase.New(proj)
			out := cmd.OutOrStdout()
			c.OnChange(func(f *codebase.FileInfo) {
				if f.Removed {
					fmt.Fprintf(out, "removed %s\n", f.Path)
					return
				}
				fmt.Fprintf(out, "parsed %s: %d errors\n", f.Path, len(f.Diagnostics))
				for _, d := range f.Diagnostics {
					fmt.Fprintf(out, "  %s\n", d)
				}
			})

			w, err := codebase.NewWatcher(c)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
