// Package project locates the .xjava.yaml file that configures the parser
// for a source tree and enumerates the Java files below it.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/xjava/java/parser"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = ".xjava.yaml"

// Project is a source tree parsed with one parser configuration.
type Project struct {
	RootDir string

	// ConfigPath is empty when no configuration file was found and the
	// defaults are in effect.
	ConfigPath string
	Config     parser.Config

	// SourceDirs are the directories scanned for .java files, relative to
	// RootDir.
	SourceDirs []string
}

type configFile struct {
	parser.Config `yaml:",inline"`
	Sources       []string `yaml:"sources"`
}

// Load finds the project containing the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom walks up from dir to the nearest directory holding a
// configuration file. Without one, dir itself is the project root and the
// parser defaults apply.
func LoadFrom(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	path, ok := findConfig(abs)
	if !ok {
		return &Project{
			RootDir:    abs,
			Config:     parser.DefaultConfig(),
			SourceDirs: []string{"."},
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	proj, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	proj.RootDir = filepath.Dir(path)
	proj.ConfigPath = path
	return proj, nil
}

func parse(data []byte) (*Project, error) {
	file := configFile{Config: parser.DefaultConfig()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := file.Config.Validate(); err != nil {
		return nil, err
	}
	sources := file.Sources
	if len(sources) == 0 {
		sources = []string{"."}
	}
	return &Project{Config: file.Config, SourceDirs: sources}, nil
}

func findConfig(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ParserOptions returns the parser options for a file of this project.
func (p *Project) ParserOptions(path string) []parser.Option {
	return []parser.Option{parser.WithFile(path), parser.WithConfig(p.Config)}
}

// JavaFiles returns all .java files below the source directories, sorted.
// Hidden directories are skipped.
func (p *Project) JavaFiles() ([]string, error) {
	seen := map[string]bool{}
	var files []string

	for _, src := range p.SourceDirs {
		dir := src
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.RootDir, src)
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !IsJavaFile(path) || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan java files in %s: %w", dir, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func IsJavaFile(path string) bool {
	return strings.HasSuffix(path, ".java")
}
