package tree

import (
	"fmt"

	"github.com/dhamidi/xjava/java/lexer"
)

type markerState int

const (
	markerOpen markerState = iota
	markerDone
	markerDropped
	markerRolledBack
)

func (s markerState) String() string {
	switch s {
	case markerOpen:
		return "open"
	case markerDone:
		return "done"
	case markerDropped:
		return "dropped"
	case markerRolledBack:
		return "rolled back"
	}
	return "unknown"
}

// A Marker is a position in the token stream that later becomes a node,
// disappears, or serves as a rollback point.
type Marker struct {
	b         *Builder
	start     int
	end       int
	remapMark int
	state     markerState

	kind        NodeKind
	message     string
	lazy        bool
	closed      bool
	greedyRight bool
}

type event struct {
	marker *Marker
	done   bool
}

type remap struct {
	lexeme int
	old    lexer.TokenKind
}

// Builder is a cursor over a token array that records a flat list of
// start and done events. Nodes are only materialized by Build, so
// speculative parses are undone by truncating the event list.
//
// Trivia stays in the token array but the cursor never stops on it.
type Builder struct {
	tokens  []lexer.Token
	lexemes []int
	kinds   []lexer.TokenKind
	cur     int

	production []event
	remaps     []remap
	deep       bool
}

// NewBuilder takes ownership of tokens. A trailing EOF token is added when
// the slice does not end with one.
func NewBuilder(tokens []lexer.Token) *Builder {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.TokenEOF {
		var end lexer.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Span.End
		} else {
			end = lexer.Position{Line: 1, Column: 1}
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.TokenEOF, Span: lexer.Span{Start: end, End: end}})
	}

	b := &Builder{tokens: tokens}
	for i, tok := range tokens {
		if tok.Kind.IsTrivia() {
			continue
		}
		b.lexemes = append(b.lexemes, i)
		b.kinds = append(b.kinds, tok.Kind)
		if tok.Kind == lexer.TokenEOF {
			break
		}
	}
	return b
}

func (b *Builder) eofIndex() int {
	return len(b.lexemes) - 1
}

func (b *Builder) TokenType() lexer.TokenKind {
	return b.kinds[b.cur]
}

func (b *Builder) TokenText() string {
	return b.tokens[b.lexemes[b.cur]].Literal
}

// Token returns the current token with its kind as currently remapped.
func (b *Builder) Token() lexer.Token {
	tok := b.tokens[b.lexemes[b.cur]]
	tok.Kind = b.kinds[b.cur]
	return tok
}

// LookAhead returns the kind of the n-th token after the current one,
// TokenEOF past the end.
func (b *Builder) LookAhead(n int) lexer.TokenKind {
	i := b.cur + n
	if i < 0 || i >= len(b.kinds) {
		return lexer.TokenEOF
	}
	return b.kinds[i]
}

// LookAheadText returns the literal of the n-th token after the current one.
func (b *Builder) LookAheadText(n int) string {
	i := b.cur + n
	if i < 0 || i >= len(b.kinds) {
		return ""
	}
	return b.tokens[b.lexemes[i]].Literal
}

// PrevTokenType returns the kind of the last consumed token.
func (b *Builder) PrevTokenType() lexer.TokenKind {
	if b.cur == 0 {
		return lexer.TokenEOF
	}
	return b.kinds[b.cur-1]
}

// Adjacent reports whether the n-th token after the current one follows
// its predecessor with no whitespace or comment in between.
func (b *Builder) Adjacent(n int) bool {
	i := b.cur + n
	if i <= 0 || i >= len(b.lexemes) {
		return false
	}
	return b.lexemes[i] == b.lexemes[i-1]+1
}

// Index is the number of tokens consumed so far, trivia excluded.
func (b *Builder) Index() int {
	return b.cur
}

func (b *Builder) Eof() bool {
	return b.cur >= b.eofIndex()
}

func (b *Builder) Advance() {
	if b.cur < b.eofIndex() {
		b.cur++
	}
}

// AdvanceN advances n times, stopping at end of input.
func (b *Builder) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		b.Advance()
	}
}

// Expect advances over the current token if it has the given kind.
func (b *Builder) Expect(kind lexer.TokenKind) bool {
	if b.TokenType() == kind {
		b.Advance()
		return true
	}
	return false
}

// ExpectOrError is Expect that leaves an error node when the token is
// missing.
func (b *Builder) ExpectOrError(kind lexer.TokenKind, message string) bool {
	if b.Expect(kind) {
		return true
	}
	b.Error(message)
	return false
}

// RemapCurrentToken changes the kind of the current token. Rolling back a
// marker created before the call restores the original kind.
func (b *Builder) RemapCurrentToken(kind lexer.TokenKind) {
	if b.Eof() {
		return
	}
	b.remaps = append(b.remaps, remap{lexeme: b.cur, old: b.kinds[b.cur]})
	b.kinds[b.cur] = kind
}

func (b *Builder) Position() lexer.Position {
	return b.tokens[b.lexemes[b.cur]].Span.Start
}

// Deep reports whether nested code blocks are parsed eagerly.
func (b *Builder) Deep() bool {
	return b.deep
}

func (b *Builder) SetDeep(deep bool) {
	b.deep = deep
}

func (b *Builder) Mark() *Marker {
	m := &Marker{b: b, start: b.cur, remapMark: len(b.remaps)}
	b.production = append(b.production, event{marker: m})
	return m
}

// Error leaves a zero-width error node at the current position.
func (b *Builder) Error(message string) {
	b.Mark().Error(message)
}

func (b *Builder) startIndex(m *Marker) int {
	for i := len(b.production) - 1; i >= 0; i-- {
		e := b.production[i]
		if e.marker == m && !e.done {
			return i
		}
	}
	panic(fmt.Sprintf("tree: marker at token %d is not in the production", m.start))
}

func (m *Marker) mustBe(state markerState, op string) {
	if m.state != state {
		panic(fmt.Sprintf("tree: %s on %s marker", op, m.state))
	}
}

func (m *Marker) close(kind NodeKind) {
	m.mustBe(markerOpen, "done")
	b := m.b
	for i := len(b.production) - 1; i >= 0; i-- {
		e := b.production[i]
		if e.marker == m {
			break
		}
		if !e.done && e.marker.state == markerOpen {
			panic(fmt.Sprintf("tree: closing %s with an open inner marker at token %d", kind, e.marker.start))
		}
	}
	m.kind = kind
	m.end = b.cur
	m.state = markerDone
	b.production = append(b.production, event{marker: m, done: true})
}

func (m *Marker) Done(kind NodeKind) {
	m.close(kind)
}

// Error closes the marker as an error node carrying message.
func (m *Marker) Error(message string) {
	m.message = message
	m.close(KindError)
}

// DoneLazy closes the marker as a region whose tokens are kept raw instead
// of becoming children.
func (m *Marker) DoneLazy(kind NodeKind, closed bool) {
	m.lazy = true
	m.closed = closed
	m.close(kind)
}

// Drop discards the marker. Nodes completed inside it stay.
func (m *Marker) Drop() {
	m.mustBe(markerOpen, "drop")
	b := m.b
	i := b.startIndex(m)
	b.production = append(b.production[:i], b.production[i+1:]...)
	m.state = markerDropped
}

// Rollback restores the cursor to the marker, discards every event recorded
// since it and reverts token remaps made since it was created.
func (m *Marker) Rollback() {
	if m.state != markerOpen && m.state != markerDone {
		panic(fmt.Sprintf("tree: rollback on %s marker", m.state))
	}
	b := m.b
	i := b.startIndex(m)
	for _, e := range b.production[i:] {
		if !e.done {
			e.marker.state = markerRolledBack
		}
	}
	b.production = b.production[:i]
	b.cur = m.start
	for j := len(b.remaps) - 1; j >= m.remapMark; j-- {
		b.kinds[b.remaps[j].lexeme] = b.remaps[j].old
	}
	b.remaps = b.remaps[:m.remapMark]
}

// Precede returns a new open marker that starts where m starts and will
// enclose it.
func (m *Marker) Precede() *Marker {
	if m.state != markerOpen && m.state != markerDone {
		panic(fmt.Sprintf("tree: precede on %s marker", m.state))
	}
	b := m.b
	i := b.startIndex(m)
	p := &Marker{b: b, start: m.start, remapMark: m.remapMark}
	b.production = append(b.production, event{})
	copy(b.production[i+1:], b.production[i:])
	b.production[i] = event{marker: p}
	return p
}

// SetGreedyRight makes the finished node's span run up to the next token,
// covering any whitespace and comments after its last token.
func (m *Marker) SetGreedyRight() {
	m.greedyRight = true
}

// Kind returns the node kind of a completed marker.
func (m *Marker) Kind() NodeKind {
	return m.kind
}

func (m *Marker) IsDone() bool {
	return m.state == markerDone
}

// Build materializes the recorded events under a root node of the given
// kind. Tokens not covered by any marker become children of the root.
func (b *Builder) Build(root NodeKind) *Node {
	rootNode := &Node{Kind: root}
	stack := []*Node{rootNode}
	next := 0

	flush := func(to int) {
		top := stack[len(stack)-1]
		for ; next < to && next < b.eofIndex(); next++ {
			tok := b.tokens[b.lexemes[next]]
			tok.Kind = b.kinds[next]
			top.AddChild(&Node{Kind: KindToken, Span: tok.Span, Token: &tok})
		}
	}

	for _, e := range b.production {
		m := e.marker
		if m.state == markerOpen {
			panic(fmt.Sprintf("tree: build with open marker at token %d", m.start))
		}
		if !e.done {
			flush(m.start)
			n := &Node{Kind: m.kind, Error: m.message, GreedyRight: m.greedyRight}
			stack[len(stack)-1].AddChild(n)
			stack = append(stack, n)
			continue
		}
		n := stack[len(stack)-1]
		if m.lazy {
			n.Lazy = b.region(m)
			next = m.end
		} else {
			flush(m.end)
		}
		n.Span = b.span(m)
		stack = stack[:len(stack)-1]
	}
	flush(b.eofIndex())

	rootNode.Span = lexer.Span{
		Start: b.tokens[0].Span.Start,
		End:   b.tokens[len(b.tokens)-1].Span.End,
	}
	return rootNode
}

func (b *Builder) span(m *Marker) lexer.Span {
	if m.end <= m.start {
		pos := b.tokens[b.lexemes[m.start]].Span.Start
		return lexer.Span{Start: pos, End: pos}
	}
	span := lexer.Span{
		Start: b.tokens[b.lexemes[m.start]].Span.Start,
		End:   b.tokens[b.lexemes[m.end-1]].Span.End,
	}
	if m.greedyRight {
		span.End = b.tokens[b.lexemes[m.end]].Span.Start
	}
	return span
}

func (b *Builder) region(m *Marker) *LazyRegion {
	region := &LazyRegion{Closed: m.closed}
	if m.end > m.start {
		from, to := b.lexemes[m.start], b.lexemes[m.end-1]
		if m.greedyRight {
			to = b.lexemes[m.end] - 1
		}
		region.Tokens = append([]lexer.Token(nil), b.tokens[from:to+1]...)
	}
	return region
}
