package codebase

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/xjava/java/tree"
	"github.com/dhamidi/xjava/project"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "xjava"

// LSPServer publishes parse diagnostics and block folding ranges for Java
// files over the language server protocol.
type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string

	mu     sync.Mutex
	notify glsp.NotifyFunc
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:               ls.initialize,
		Initialized:              ls.initialized,
		Shutdown:                 ls.shutdown,
		SetTrace:                 ls.setTrace,
		TextDocumentDidOpen:      ls.textDocumentDidOpen,
		TextDocumentDidChange:    ls.textDocumentDidChange,
		TextDocumentDidClose:     ls.textDocumentDidClose,
		TextDocumentDidSave:      ls.textDocumentDidSave,
		TextDocumentFoldingRange: ls.textDocumentFoldingRange,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	proj, err := project.LoadFrom(rootDir)
	if err != nil {
		return nil, err
	}
	ls.codebase = New(proj)
	ls.codebase.OnChange(ls.publish)
	log.Infof("project root %s", proj.RootDir)

	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	if err := ls.codebase.ScanAll(); err != nil {
		log.Errorf("scan: %v", err)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return ls.update(params.TextDocument.URI, []byte(params.TextDocument.Text))
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		return ls.update(params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		return ls.update(params.TextDocument.URI, []byte(*params.Text))
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if _, err := ls.codebase.ScanFile(path); err != nil {
		log.Warningf("reparse %s: %v", path, err)
	}
	return nil
}

func (ls *LSPServer) update(uri protocol.DocumentUri, content []byte) error {
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}
	if _, err := ls.codebase.UpdateFile(path, content); err != nil {
		log.Warningf("parse %s: %v", path, err)
	}
	return nil
}

func (ls *LSPServer) publish(f *FileInfo) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()
	if notify == nil {
		return
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(f.Path),
		Diagnostics: toProtocolDiagnostics(f),
	})
}

func (ls *LSPServer) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}
	return foldingRanges(file), nil
}

func toProtocolDiagnostics(f *FileInfo) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	result := []protocol.Diagnostic{}
	for _, d := range f.Diagnostics {
		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toProtocolPosition(d.Span.Start.Line, d.Span.Start.Column),
				End:   toProtocolPosition(d.Span.End.Line, d.Span.End.Column),
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return result
}

// foldingRanges returns one range per multi-line block or class body.
// Lazy blocks are folded without being expanded.
func foldingRanges(f *FileInfo) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	if f.Tree == nil {
		return ranges
	}
	f.Tree.Walk(func(n *tree.Node) bool {
		if n.Kind != tree.KindCodeBlock && n.Kind != tree.KindClassBody {
			return true
		}
		if n.Span.End.Line > n.Span.Start.Line {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: protocol.UInteger(n.Span.Start.Line - 1),
				EndLine:   protocol.UInteger(n.Span.End.Line - 1),
			})
		}
		return true
	})
	return ranges
}

// toProtocolPosition converts a 1-based line and column to the 0-based
// protocol position. Columns count bytes.
func toProtocolPosition(line, column int) protocol.Position {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: protocol.UInteger(column - 1),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
