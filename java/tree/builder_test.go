package tree

import (
	"strings"
	"testing"

	"github.com/dhamidi/xjava/java/lexer"
)

func newBuilder(src string) *Builder {
	return NewBuilder(lexer.Tokenize([]byte(src), "test.java"))
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestBuilderCursorSkipsTrivia(t *testing.T) {
	b := newBuilder("a /* c */ b // x\n c")
	var got []string
	for !b.Eof() {
		got = append(got, b.TokenText())
		b.Advance()
	}
	if strings.Join(got, " ") != "a b c" {
		t.Errorf("got %v, want [a b c]", got)
	}
	if b.TokenType() != lexer.TokenEOF {
		t.Errorf("TokenType at end = %v, want EOF", b.TokenType())
	}
	b.Advance()
	if !b.Eof() {
		t.Error("Advance past end should stay at EOF")
	}
}

func TestBuilderLookAhead(t *testing.T) {
	b := newBuilder("x = 1;")
	tests := []struct {
		n    int
		want lexer.TokenKind
	}{
		{0, lexer.TokenIdent},
		{1, lexer.TokenAssign},
		{2, lexer.TokenIntLiteral},
		{3, lexer.TokenSemicolon},
		{4, lexer.TokenEOF},
		{10, lexer.TokenEOF},
	}
	for _, tt := range tests {
		if got := b.LookAhead(tt.n); got != tt.want {
			t.Errorf("LookAhead(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestBuilderAdjacent(t *testing.T) {
	b := newBuilder("a >> b > > c")
	b.Advance()
	if !b.Adjacent(1) {
		t.Error(">> should be adjacent")
	}
	b.AdvanceN(3)
	if b.Adjacent(1) {
		t.Error("> > should not be adjacent")
	}
}

func TestMarkerDone(t *testing.T) {
	b := newBuilder("a + b")
	m := b.Mark()
	b.AdvanceN(3)
	m.Done(KindBinaryExpr)

	root := b.Build(KindStatementList)
	if got := root.Outline(); got != "StatementList(BinaryExpr)" {
		t.Errorf("Outline() = %q", got)
	}
	expr := root.Children[0]
	if len(expr.Children) != 3 {
		t.Fatalf("expected 3 token children, got %d", len(expr.Children))
	}
	if expr.Span.Start.Column != 1 || expr.Span.End.Column != 6 {
		t.Errorf("span = %v-%v", expr.Span.Start, expr.Span.End)
	}
}

func TestMarkerDoneWithOpenInnerPanics(t *testing.T) {
	b := newBuilder("a b")
	outer := b.Mark()
	b.Advance()
	b.Mark()
	b.Advance()
	expectPanic(t, "Done", func() { outer.Done(KindBlockStmt) })
}

func TestMarkerRollback(t *testing.T) {
	b := newBuilder("if x y")
	start := b.Mark()
	b.Advance()
	inner := b.Mark()
	b.Advance()
	inner.Done(KindReferenceExpr)
	b.Error("Statement expected")
	start.Rollback()

	if b.TokenText() != "if" {
		t.Errorf("cursor after rollback at %q, want if", b.TokenText())
	}
	root := b.Build(KindStatementList)
	if len(root.Composite()) != 0 {
		t.Errorf("rolled back nodes leaked: %s", root.Outline())
	}
	if HasErrors(root) {
		t.Error("diagnostics of a rolled back branch must not survive")
	}
	expectPanic(t, "Done after rollback", func() { inner.Done(KindReferenceExpr) })
	expectPanic(t, "Rollback twice", func() { start.Rollback() })
}

func TestRollbackRevertsRemaps(t *testing.T) {
	b := newBuilder("yield x;")
	m := b.Mark()
	b.RemapCurrentToken(lexer.TokenYield)
	if b.TokenType() != lexer.TokenYield {
		t.Fatalf("remap not applied")
	}
	m.Rollback()
	if b.TokenType() != lexer.TokenIdent {
		t.Errorf("TokenType after rollback = %v, want Ident", b.TokenType())
	}

	keep := b.Mark()
	b.RemapCurrentToken(lexer.TokenYield)
	b.AdvanceN(3)
	keep.Done(KindYieldStmt)
	root := b.Build(KindStatementList)
	if got := root.Children[0].Children[0].Token.Kind; got != lexer.TokenYield {
		t.Errorf("built token kind = %v, want yield", got)
	}
}

func TestMarkerDrop(t *testing.T) {
	b := newBuilder("a b")
	outer := b.Mark()
	inner := b.Mark()
	b.Advance()
	inner.Done(KindReferenceExpr)
	b.Advance()
	outer.Drop()

	root := b.Build(KindStatementList)
	if got := root.Outline(); got != "StatementList(ReferenceExpr)" {
		t.Errorf("Outline() = %q", got)
	}
	if len(root.Children) != 2 {
		t.Errorf("expected reference and trailing token, got %d children", len(root.Children))
	}
}

func TestMarkerPrecede(t *testing.T) {
	b := newBuilder("a, b;")
	expr := b.Mark()
	b.Advance()
	expr.Done(KindReferenceExpr)
	list := expr.Precede()
	stmt := list.Precede()
	b.Advance()
	second := b.Mark()
	b.Advance()
	second.Done(KindReferenceExpr)
	list.Done(KindExpressionList)
	b.Advance()
	stmt.Done(KindExpressionListStmt)

	root := b.Build(KindStatementList)
	want := "StatementList(ExpressionListStmt(ExpressionList(ReferenceExpr, ReferenceExpr)))"
	if got := root.Outline(); got != want {
		t.Errorf("Outline() = %q, want %q", got, want)
	}
}

func TestBuilderErrorIsZeroWidth(t *testing.T) {
	b := newBuilder("x y")
	b.Advance()
	b.Error("';' expected")
	b.Advance()

	root := b.Build(KindStatementList)
	diags := Diagnostics(root)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Message != "';' expected" {
		t.Errorf("message = %q", diags[0].Message)
	}
	if diags[0].Span.Len() != 0 || diags[0].Span.Start.Column != 3 {
		t.Errorf("span = %v-%v, want zero width at column 3", diags[0].Span.Start, diags[0].Span.End)
	}
}

func TestMarkerErrorCoversTokens(t *testing.T) {
	b := newBuilder("else x")
	m := b.Mark()
	b.Advance()
	m.Error("'else' without 'if'")
	root := b.Build(KindStatementList)
	errNode := root.FirstChildOfKind(KindError)
	if errNode == nil || len(errNode.Children) != 1 || errNode.Children[0].TokenLiteral() != "else" {
		t.Fatalf("error node should wrap the else token:\n%s", root)
	}
}

func TestDoneLazyKeepsRawTokens(t *testing.T) {
	b := newBuilder("{ a; /* c */ }")
	m := b.Mark()
	b.AdvanceN(4)
	m.DoneLazy(KindCodeBlock, true)

	root := b.Build(KindStatementList)
	block := root.Children[0]
	if !block.IsLazy() || len(block.Children) != 0 {
		t.Fatalf("expected childless lazy block:\n%s", root)
	}
	if !block.Lazy.Closed {
		t.Error("region should be closed")
	}
	if got := block.Text(); got != "{ a ; }" {
		t.Errorf("Text() = %q", got)
	}
	comments := 0
	for _, tok := range block.Lazy.Tokens {
		if tok.Kind == lexer.TokenComment {
			comments++
		}
	}
	if comments != 1 {
		t.Errorf("region should keep trivia, found %d comments", comments)
	}
}

func TestGreedyRightSpan(t *testing.T) {
	src := "{ a;   // trailing\n"
	b := newBuilder(src)
	m := b.Mark()
	b.AdvanceN(3)
	m.Done(KindCodeBlock)
	m.SetGreedyRight()

	root := b.Build(KindStatementList)
	block := root.Children[0]
	if !block.GreedyRight {
		t.Error("GreedyRight not recorded")
	}
	if block.Span.End.Offset != len(src) {
		t.Errorf("span end = %d, want %d", block.Span.End.Offset, len(src))
	}
}

func TestBuildWithOpenMarkerPanics(t *testing.T) {
	b := newBuilder("a")
	b.Mark()
	expectPanic(t, "Build", func() { b.Build(KindStatementList) })
}

func TestBuildAttachesTokensToTheirNode(t *testing.T) {
	b := newBuilder("a + b;")
	stmt := b.Mark()
	expr := b.Mark()
	b.AdvanceN(3)
	expr.Done(KindBinaryExpr)
	b.Advance()
	stmt.Done(KindExpressionStmt)

	root := b.Build(KindStatementList)
	if len(root.Children) != 1 {
		t.Fatalf("root holds %d children, want 1:\n%s", len(root.Children), root)
	}
	statement := root.Children[0]
	if len(statement.Children) != 2 || statement.Children[1].TokenLiteral() != ";" {
		t.Fatalf("statement should hold the expression and ';':\n%s", root)
	}
	binary := statement.Children[0]
	if got := binary.Text(); got != "a + b" {
		t.Errorf("BinaryExpr.Text() = %q, want %q", got, "a + b")
	}
	if !binary.HasToken(lexer.TokenPlus) {
		t.Error("BinaryExpr does not hold its operator")
	}
}
