package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/xjava/java/codebase"
	"github.com/dhamidi/xjava/project"
)

func newCheckCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report syntax errors in .java files, including method bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.Load()
			if err != nil {
				return err
			}
			files, err := checkTargets(proj, args)
			if err != nil {
				return err
			}

			c := codebase.New(proj)
			g := new(errgroup.Group)
			g.SetLimit(jobs)
			for _, path := range files {
				path := path
				g.Go(func() error {
					_, err := c.ScanFile(path)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			count := 0
			for _, f := range c.Files() {
				for _, d := range f.Diagnostics {
					fmt.Fprintln(out, d.String())
					count++
				}
			}
			if count > 0 {
				return fmt.Errorf("%d syntax errors in %d files", count, len(files))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files parsed in parallel")

	return cmd
}

// checkTargets expands directories to the .java files below them. Without
// arguments the project's source directories are used.
func checkTargets(proj *project.Project, args []string) ([]string, error) {
	if len(args) == 0 {
		return proj.JavaFiles()
	}
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		sub := *proj
		sub.SourceDirs = []string{abs}
		found, err := sub.JavaFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
