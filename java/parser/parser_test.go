package parser

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dhamidi/xjava/java/tree"
)

const sampleUnit = `package a.b;

import java.util.List;
import static java.lang.Math.*;

public class A<T> extends B implements C, D {
    private int x = 1;

    public A() { }

    <U> U m(U u) throws E { return u; }

    enum K { X, Y(1) { }; }
}
`

func TestParseCompilationUnit(t *testing.T) {
	root := ParseCompilationUnit(strings.NewReader(sampleUnit)).Finish()
	if root == nil {
		t.Fatal("Finish returned nil")
	}

	want := "File(" +
		"PackageStmt(CodeReference(CodeReference)), " +
		"ImportList(ImportStmt, ImportStmt), " +
		"Class(ModifierList, TypeParameterList(TypeParameter), ExtendsList(Type(CodeReference)), " +
		"ImplementsList(Type(CodeReference), Type(CodeReference)), " +
		"ClassBody(" +
		"Field(ModifierList, Type, LiteralExpr), " +
		"Method(ModifierList, ParameterList, CodeBlock*), " +
		"Method(ModifierList, TypeParameterList(TypeParameter), Type(CodeReference), " +
		"ParameterList(Parameter(ModifierList, Type(CodeReference))), ThrowsList(Type(CodeReference)), CodeBlock*), " +
		"Class(ModifierList, ClassBody(EnumConstant, EnumConstant(ExpressionList(LiteralExpr), AnonymousClass(ClassBody)))))))"
	if got := root.Outline(); got != want {
		t.Errorf("outline mismatch\n got: %s\nwant: %s", got, want)
	}
	if tree.HasErrors(root) {
		t.Errorf("unexpected diagnostics: %v", messages(root))
	}
	if got := root.Span.End.Offset; got != len(sampleUnit) {
		t.Errorf("root ends at %d, want %d", got, len(sampleUnit))
	}
}

func TestExpandAll(t *testing.T) {
	p := ParseCompilationUnit(strings.NewReader(sampleUnit))
	root := p.Finish()
	p.ExpandAll(root)

	root.Walk(func(n *tree.Node) bool {
		if n.IsLazy() {
			t.Errorf("lazy node left after ExpandAll: %s", n.Kind)
		}
		return true
	})
	if tree.HasErrors(root) {
		t.Errorf("unexpected diagnostics: %v", messages(root))
	}
	if got := len(root.Find(tree.KindReturnStmt)); got != 1 {
		t.Errorf("found %d return statements, want 1", got)
	}
}

func TestExpandBlock(t *testing.T) {
	p := ParseStatements(strings.NewReader("{ { } }"))
	root := p.Finish()

	blocks := root.Find(tree.KindCodeBlock)
	if len(blocks) != 1 || !blocks[0].IsLazy() {
		t.Fatalf("want one lazy block, got %s", root.Outline())
	}
	lazy := blocks[0]
	if !lazy.Lazy.Closed {
		t.Error("region not closed")
	}
	if got := len(lazy.Lazy.Tokens); got != 7 {
		t.Errorf("region holds %d tokens, want 7", got)
	}

	first := p.ExpandBlock(lazy)
	if got, want := first.Outline(), "CodeBlock(BlockStmt(CodeBlock))"; got != want {
		t.Errorf("expansion = %s, want %s", got, want)
	}
	second := p.ExpandBlock(lazy)
	if first.String() != second.String() {
		t.Errorf("expansions differ:\n%s\n%s", first, second)
	}
	if !lazy.IsLazy() {
		t.Error("ExpandBlock modified its input")
	}
}

func TestExpandUnclosedBlock(t *testing.T) {
	src := "{ a; "
	p := ParseStatements(strings.NewReader(src))
	root := p.Finish()

	block := root.Find(tree.KindCodeBlock)[0]
	if block.Lazy.Closed {
		t.Error("region of unclosed block reported as closed")
	}
	if !block.GreedyRight {
		t.Error("unclosed block is not greedy")
	}
	if got := block.Span.End.Offset; got != len(src) {
		t.Errorf("block ends at %d, want %d", got, len(src))
	}

	expanded := p.ExpandBlock(block)
	if got, want := expanded.Outline(), "CodeBlock(ExpressionStmt(ReferenceExpr), Error)"; got != want {
		t.Errorf("expansion = %s, want %s", got, want)
	}
}

func TestExpandBlockIgnoresEagerNodes(t *testing.T) {
	p := ParseStatements(strings.NewReader("a();"))
	root := p.Finish()
	if got := p.ExpandBlock(root); got != root {
		t.Error("ExpandBlock replaced a node that was not lazy")
	}
}

func TestParseCodeBlockEntry(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"{ a(); }", "StatementList(CodeBlock(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList))))"},
		{"{ } }", "StatementList(CodeBlock(Error))"},
		{"a();", "StatementList(Error, ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := ParseCodeBlock(strings.NewReader(tt.src)).Finish()
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestParseExpressionEntry(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "StatementList(BinaryExpr(ReferenceExpr, BinaryExpr(ReferenceExpr, ReferenceExpr)))"},
		{"x -> x", "StatementList(LambdaExpr(ParameterList(Parameter), ReferenceExpr))"},
		{"a b", "StatementList(ReferenceExpr, Error)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := ParseExpression(strings.NewReader(tt.src)).Finish()
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 + 2", true},
		{"1 + ", false},
		{"foo(", false},
		{"foo()", true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := ParseExpression(strings.NewReader(tt.src)).IsComplete(); got != tt.want {
				t.Errorf("IsComplete(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestFinishReportsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	p := ParseStatements(iotest.ErrReader(boom))
	if root := p.Finish(); root != nil {
		t.Errorf("Finish returned a tree for a failing reader: %s", root)
	}
	if !errors.Is(p.Err(), boom) {
		t.Errorf("Err() = %v, want %v", p.Err(), boom)
	}
}

func TestFinishRejectsInvalidConfig(t *testing.T) {
	p := ParseStatements(strings.NewReader("a;"), atLevel("not a level"))
	if root := p.Finish(); root != nil {
		t.Errorf("Finish returned a tree for an invalid config: %s", root)
	}
	if p.Err() == nil {
		t.Error("Err() = nil, want a config error")
	}
}

func TestReset(t *testing.T) {
	p := ParseStatements(strings.NewReader("a;"))
	if got := p.Finish().Outline(); got != "StatementList(ExpressionStmt(ReferenceExpr))" {
		t.Fatalf("first parse = %s", got)
	}
	p.Reset(strings.NewReader("return;"))
	if got := p.Finish().Outline(); got != "StatementList(ReturnStmt)" {
		t.Errorf("parse after Reset = %s", got)
	}
}

func TestWithComments(t *testing.T) {
	p := ParseStatements(strings.NewReader("// one\na(); /* two */"), WithComments())
	p.Finish()
	if got := len(p.Comments()); got != 2 {
		t.Errorf("collected %d comments, want 2", got)
	}
}

func TestDiagnosticsLookInsideLazyBlocks(t *testing.T) {
	p := ParseStatements(strings.NewReader("{ a( }"))
	root := p.Finish()
	if tree.HasErrors(root) {
		t.Fatalf("lazy block reported errors before expansion: %v", messages(root))
	}
	diags := p.Diagnostics(root)
	if len(diags) == 0 {
		t.Fatal("no diagnostics from the lazy block")
	}
	if diags[0].Message != "Expression expected" {
		t.Errorf("first diagnostic = %q, want Expression expected", diags[0].Message)
	}
	if !root.Find(tree.KindCodeBlock)[0].IsLazy() {
		t.Error("Diagnostics expanded the tree in place")
	}
}
