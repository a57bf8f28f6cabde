// Package codebase keeps the parse trees of a project's source files up to
// date. Files are reparsed from scratch whenever their content changes.
package codebase

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/xjava/java/parser"
	"github.com/dhamidi/xjava/java/tree"
	"github.com/dhamidi/xjava/project"
)

var log = commonlog.GetLogger("xjava.codebase")

type Codebase struct {
	mu        sync.RWMutex
	project   *project.Project
	files     map[string]*FileInfo
	listeners []func(*FileInfo)
}

// FileInfo is the latest parse of one file. It is replaced, never
// modified, when the file changes.
type FileInfo struct {
	Path        string
	Content     []byte
	Tree        *tree.Node
	Diagnostics []tree.Diagnostic

	// Removed is set on the FileInfo passed to listeners when a file was
	// deleted.
	Removed bool

	parser *parser.Parser
}

func New(proj *project.Project) *Codebase {
	return &Codebase{
		project: proj,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.project.RootDir
}

func (c *Codebase) Project() *project.Project {
	return c.project
}

// OnChange registers fn to be called after a file was parsed or removed.
// Listeners run on the goroutine that made the change.
func (c *Codebase) OnChange(fn func(*FileInfo)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Codebase) ScanAll() error {
	paths, err := c.project.JavaFiles()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if _, err := c.ScanFile(path); err != nil {
			log.Warningf("scan %s: %v", path, err)
		}
	}
	return nil
}

func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile parses content as the new text of path. Diagnostics include
// those inside lazy blocks.
func (c *Codebase) UpdateFile(path string, content []byte) (*FileInfo, error) {
	p := parser.ParseCompilationUnit(bytes.NewReader(content), c.project.ParserOptions(path)...)
	root := p.Finish()
	if root == nil {
		return nil, fmt.Errorf("parse %s: %w", path, p.Err())
	}

	info := &FileInfo{
		Path:        path,
		Content:     content,
		Tree:        root,
		Diagnostics: p.Diagnostics(root),
		parser:      p,
	}
	log.Debugf("parsed %s: %d diagnostics", path, len(info.Diagnostics))

	c.mu.Lock()
	c.files[path] = info
	listeners := c.listeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(info)
	}
	return info, nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	_, known := c.files[path]
	delete(c.files, path)
	listeners := c.listeners
	c.mu.Unlock()

	if !known {
		return
	}
	for _, fn := range listeners {
		fn(&FileInfo{Path: path, Removed: true})
	}
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the known files sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}

// ExpandAt returns the expansion of the lazy block that starts on the
// given line. Blocks nested inside other lazy blocks are found by
// expanding their parents. It returns nil when no lazy block starts there.
func (f *FileInfo) ExpandAt(line int) *tree.Node {
	if f.Tree == nil {
		return nil
	}
	return expandAt(f.parser, f.Tree, line)
}

func expandAt(p *parser.Parser, root *tree.Node, line int) *tree.Node {
	var found *tree.Node
	root.Walk(func(n *tree.Node) bool {
		if found != nil || n.Span.Start.Line > line || n.Span.End.Line < line {
			return false
		}
		if n.IsLazy() {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	expanded := p.ExpandBlock(found)
	if found.Span.Start.Line == line {
		return expanded
	}
	return expandAt(p, expanded, line)
}
