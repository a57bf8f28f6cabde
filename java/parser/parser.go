package parser

import (
	"io"

	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const msgExpectedClass = "Class or interface expected"

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

func WithPositions() Option {
	return func(p *Parser) {
		p.includePositions = true
	}
}

func WithConfig(config Config) Option {
	return func(p *Parser) {
		p.config = config
	}
}

// WithRegionHandler receives the fragment regions met while parsing.
func WithRegionHandler(h RegionHandler) Option {
	return func(p *Parser) {
		p.regions = h
	}
}

type entryFunc func(*JavaParser, *tree.Builder)

// Parser reads one source and parses it with a fixed entry point. It is
// not safe for concurrent use.
type Parser struct {
	file             string
	includeComments  bool
	includePositions bool
	config           Config
	regions          RegionHandler
	reader           io.Reader
	input            []byte
	comments         []lexer.Token
	entry            entryFunc
	root             tree.NodeKind
	err              error
}

func newParser(r io.Reader, entry entryFunc, root tree.NodeKind, opts []Option) *Parser {
	p := &Parser{
		config: DefaultConfig(),
		reader: r,
		entry:  entry,
		root:   root,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func ParseCompilationUnit(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*JavaParser).parseCompilationUnit, tree.KindFile, opts)
}

// ParseStatements parses a sequence of statements, such as a snippet or
// the body of a script.
func ParseStatements(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*JavaParser).parseStatementList, tree.KindStatementList, opts)
}

// ParseCodeBlock parses input holding a single braced block.
func ParseCodeBlock(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*JavaParser).parseCodeBlock, tree.KindStatementList, opts)
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*JavaParser).parseExpression, tree.KindStatementList, opts)
}

func (p *Parser) IncludesPositions() bool {
	return p.includePositions
}

func (p *Parser) Comments() []lexer.Token {
	return p.comments
}

func (p *Parser) Config() Config {
	return p.config
}

// Err returns the error that made Finish return nil.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

func (p *Parser) tokenize() []lexer.Token {
	tokens := lexer.Tokenize(p.input, p.file)
	p.comments = nil
	if p.includeComments {
		for _, tok := range tokens {
			if tok.Kind == lexer.TokenComment || tok.Kind == lexer.TokenLineComment {
				p.comments = append(p.comments, tok)
			}
		}
	}
	return tokens
}

// Finish parses the input and returns the tree. Syntax errors are error
// nodes in the tree; Finish returns nil only when the input or the
// configuration could not be read, see Err.
func (p *Parser) Finish() *tree.Node {
	if err := p.readAll(); err != nil {
		p.err = err
		return nil
	}
	if err := p.config.Validate(); err != nil {
		p.err = err
		return nil
	}
	b := tree.NewBuilder(p.tokenize())
	p.entry(NewJavaParser(p.config, p.regions), b)
	return b.Build(p.root)
}

// IsComplete reports whether the input parses without an error at end of
// input. For example, "1 + " is incomplete while "1 + 2" is complete.
func (p *Parser) IsComplete() bool {
	node := p.Finish()
	if node == nil {
		return false
	}
	end := node.Span.End.Offset
	for _, d := range tree.Diagnostics(node) {
		if d.Span.Start.Offset >= end {
			return false
		}
	}
	return true
}

func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.comments = nil
	p.err = nil
}

// ExpandBlock parses the tokens recorded by a lazy code block and returns
// the resulting code block. Other nodes are returned unchanged. The input
// node is not modified, so expanding the same node twice gives equal
// trees.
func (p *Parser) ExpandBlock(n *tree.Node) *tree.Node {
	if n == nil || !n.IsLazy() {
		return n
	}
	b := tree.NewBuilder(append([]lexer.Token(nil), n.Lazy.Tokens...))
	b.SetDeep(true)
	NewJavaParser(p.config, p.regions).Statements.ParseCodeBlockDeep(b, true)
	root := b.Build(tree.KindStatementList)
	if block := root.FirstChildOfKind(tree.KindCodeBlock); block != nil {
		return block
	}
	return root
}

// ExpandAll replaces every lazy block below n with its expansion,
// repeating until no lazy blocks remain.
func (p *Parser) ExpandAll(n *tree.Node) {
	for i, child := range n.Children {
		if child.IsLazy() {
			child = p.ExpandBlock(child)
			n.Children[i] = child
		}
		p.ExpandAll(child)
	}
}

// Diagnostics returns the diagnostics of n in document order, including
// those inside lazy blocks. Lazy blocks are expanded on the fly; n is not
// modified.
func (p *Parser) Diagnostics(n *tree.Node) []tree.Diagnostic {
	return p.collectDiagnostics(n, nil)
}

func (p *Parser) collectDiagnostics(n *tree.Node, out []tree.Diagnostic) []tree.Diagnostic {
	if n.IsLazy() {
		return p.collectDiagnostics(p.ExpandBlock(n), out)
	}
	if n.IsError() {
		out = append(out, tree.Diagnostic{Message: n.Error, Span: n.Span})
	}
	for _, child := range n.Children {
		out = p.collectDiagnostics(child, out)
	}
	return out
}

// JavaParser wires a StatementParser to the default expression,
// declaration, pattern and type parsers.
type JavaParser struct {
	Statements *StatementParser

	config       Config
	regions      RegionHandler
	expressions  *expressionParser
	declarations *declarationParser
	patterns     *patternParser
	references   *referenceParser
}

func NewJavaParser(config Config, regions RegionHandler) *JavaParser {
	j := &JavaParser{config: config, regions: regions}
	j.expressions = &expressionParser{j: j}
	j.declarations = &declarationParser{j: j}
	j.patterns = &patternParser{j: j}
	j.references = &referenceParser{j: j}
	j.Statements = NewStatementParser(Collaborators{
		Expressions:  j.expressions,
		Declarations: j.declarations,
		Patterns:     j.patterns,
		References:   j.references,
		Regions:      regions,
	}, config)
	return j
}

func (j *JavaParser) supports(f Feature) bool {
	return j.Statements.features[f]
}

func (j *JavaParser) handleRegion(b *tree.Builder) {
	tok := b.Token()
	b.Advance()
	if j.regions != nil {
		j.regions.HandleRegion(tok)
	}
}

func (j *JavaParser) parseCompilationUnit(b *tree.Builder) {
	j.parsePackage(b)

	imports := b.Mark()
	for b.TokenType() == lexer.TokenImport {
		j.parseImport(b)
	}
	imports.Done(tree.KindImportList)

	for !b.Eof() {
		switch b.TokenType() {
		case lexer.TokenSemicolon:
			b.Advance()
			continue
		case lexer.TokenFragment:
			j.handleRegion(b)
			continue
		}
		if j.declarations.Parse(b, ContextFile) == nil {
			bad := b.Mark()
			b.Advance()
			bad.Error(msgExpectedClass)
		}
	}
}

func (j *JavaParser) parsePackage(b *tree.Builder) {
	statement := b.Mark()
	j.declarations.ParseAnnotations(b)
	if !b.Expect(lexer.TokenPackage) {
		statement.Rollback()
		return
	}
	if b.TokenType() == lexer.TokenIdent {
		j.references.parseCodeReference(b, false)
	} else {
		b.Error(msgExpectedIdentifier)
	}
	j.Statements.semicolon(b)
	statement.Done(tree.KindPackageStmt)
}

func (j *JavaParser) parseImport(b *tree.Builder) {
	statement := b.Mark()
	b.Advance()
	b.Expect(lexer.TokenStatic)
	if b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier) {
		for b.TokenType() == lexer.TokenDot {
			b.Advance()
			if b.Expect(lexer.TokenStar) {
				break
			}
			if !b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier) {
				break
			}
		}
	}
	j.Statements.semicolon(b)
	statement.Done(tree.KindImportStmt)
}

func (j *JavaParser) parseStatementList(b *tree.Builder) {
	j.Statements.ParseStatements(b)
}

func (j *JavaParser) parseCodeBlock(b *tree.Builder) {
	if j.Statements.ParseCodeBlockDeep(b, true) == nil {
		b.Error(msgExpectedLBrace)
		j.Statements.ParseStatements(b)
	}
}

func (j *JavaParser) parseExpression(b *tree.Builder) {
	if j.expressions.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	}
	if !b.Eof() {
		rest := b.Mark()
		for !b.Eof() {
			b.Advance()
		}
		rest.Error(msgUnexpectedToken)
	}
}
