package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

func parseStatements(t *testing.T, src string, opts ...Option) *tree.Node {
	t.Helper()
	p := ParseStatements(strings.NewReader(src), opts...)
	root := p.Finish()
	if root == nil {
		t.Fatalf("Finish(%q) returned nil: %v", src, p.Err())
	}
	return root
}

func withConfig(edit func(*Config)) Option {
	cfg := DefaultConfig()
	edit(&cfg)
	return WithConfig(cfg)
}

func eager() Option {
	return withConfig(func(c *Config) { c.LazyBlocks = false })
}

func atLevel(level string) Option {
	return withConfig(func(c *Config) { c.LanguageLevel = level })
}

func messages(root *tree.Node) []string {
	var result []string
	for _, d := range tree.Diagnostics(root) {
		result = append(result, d.Message)
	}
	return result
}

func TestStatementOutlines(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"foo;", "StatementList(ExpressionStmt(ReferenceExpr))"},
		{"return;", "StatementList(ReturnStmt)"},
		{";", "StatementList(EmptyStmt)"},
		{"continue;", "StatementList(ContinueStmt)"},
		{
			"if (a) b(); else c();",
			"StatementList(IfStmt(ReferenceExpr, ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)), ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList))))",
		},
		{
			"a = 1, b = 2;",
			"StatementList(ExpressionListStmt(ExpressionList(AssignmentExpr(ReferenceExpr, LiteralExpr), AssignmentExpr(ReferenceExpr, LiteralExpr))))",
		},
		{
			`String s = "x";`,
			"StatementList(DeclarationStmt(LocalVariable(ModifierList, Type(CodeReference), LiteralExpr)))",
		},
		{
			"List<String> xs;",
			"StatementList(DeclarationStmt(LocalVariable(ModifierList, Type(CodeReference(TypeArgumentList(Type(CodeReference)))))))",
		},
		{
			"List<List<String>> xs;",
			"StatementList(DeclarationStmt(LocalVariable(ModifierList, Type(CodeReference(TypeArgumentList(Type(CodeReference(TypeArgumentList(Type(CodeReference))))))))))",
		},
		{"a < b;", "StatementList(ExpressionStmt(BinaryExpr(ReferenceExpr, ReferenceExpr)))"},
		{"a >> b;", "StatementList(ExpressionStmt(BinaryExpr(ReferenceExpr, ReferenceExpr)))"},
		{
			"Foo<Bar>::new;",
			"StatementList(ExpressionStmt(MethodRefExpr(ReferenceExpr, TypeArgumentList(Type(CodeReference)))))",
		},
		{
			"Foo.Bar x;",
			"StatementList(DeclarationStmt(LocalVariable(ModifierList, Type(CodeReference(CodeReference)))))",
		},
		{
			"a.b.c();",
			"StatementList(ExpressionStmt(MethodCallExpr(ReferenceExpr(ReferenceExpr(ReferenceExpr)), ExpressionList)))",
		},
		{
			"this.x = 1;",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr(ThisExpr), LiteralExpr)))",
		},
		{"int.class;", "StatementList(ExpressionStmt(ClassObjectAccessExpr(Type)))"},
		{
			"x = a ? b : c;",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr, ConditionalExpr(ReferenceExpr, ReferenceExpr, ReferenceExpr))))",
		},
		{
			"x = (String) y;",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr, TypeCastExpr(Type(CodeReference), ReferenceExpr))))",
		},
		{
			"x = (a) + b;",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr, BinaryExpr(ParenthExpr(ReferenceExpr), ReferenceExpr))))",
		},
		{
			"new Foo<>() {};",
			"StatementList(ExpressionStmt(NewExpr(Type(CodeReference(TypeArgumentList)), ExpressionList, AnonymousClass(ClassBody))))",
		},
		{
			"run(() -> { a(); });",
			"StatementList(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList(LambdaExpr(ParameterList, CodeBlock*)))))",
		},
		{"var x = 1;", "StatementList(DeclarationStmt(LocalVariable(ModifierList, Type, LiteralExpr)))"},
		{
			"int[] a = {1, 2};",
			"StatementList(DeclarationStmt(LocalVariable(ModifierList, Type, ArrayInitializerExpr(LiteralExpr, LiteralExpr))))",
		},
		{
			`@SuppressWarnings("x") int y;`,
			"StatementList(DeclarationStmt(LocalVariable(ModifierList(Annotation(CodeReference, AnnotationArgs(NameValuePair(LiteralExpr)))), Type)))",
		},
		{
			"record P(int x) {}",
			"StatementList(DeclarationStmt(Class(ModifierList, RecordHeader(RecordComponent(Type)), ClassBody)))",
		},
		{"non-sealed class A {}", "StatementList(DeclarationStmt(Class(ModifierList, ClassBody)))"},
		{"loop: for (;;) break loop;", "StatementList(LabeledStmt(ForStmt(EmptyStmt, BreakStmt)))"},
		{
			"for (String s : list) {}",
			"StatementList(ForeachStmt(Parameter(ModifierList, Type(CodeReference)), ReferenceExpr, BlockStmt(CodeBlock*)))",
		},
		{
			"for (Point(var x, var y) : ps) {}",
			"StatementList(ForeachPatternStmt(DeconstructionPattern(ModifierList, Type(CodeReference), DeconstructionList(TypeTestPattern(ModifierList, Type, PatternVariable), TypeTestPattern(ModifierList, Type, PatternVariable))), ReferenceExpr, BlockStmt(CodeBlock*)))",
		},
		{
			"for (foo(); ;) {}",
			"StatementList(ForStmt(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)), BlockStmt(CodeBlock*)))",
		},
		{
			"for (int i = 0; i < n; i++, j--) {}",
			"StatementList(ForStmt(DeclarationStmt(LocalVariable(ModifierList, Type, LiteralExpr)), BinaryExpr(ReferenceExpr, ReferenceExpr), ExpressionListStmt(ExpressionList(PostfixExpr(ReferenceExpr), PostfixExpr(ReferenceExpr))), BlockStmt(CodeBlock*)))",
		},
		{
			"if (o instanceof String s) {}",
			"StatementList(IfStmt(InstanceOfExpr(ReferenceExpr, TypeTestPattern(ModifierList, Type(CodeReference), PatternVariable)), BlockStmt(CodeBlock*)))",
		},
		{`assert x : "m";`, "StatementList(AssertStmt(ReferenceExpr, LiteralExpr))"},
		{"throw new E();", "StatementList(ThrowStmt(NewExpr(Type(CodeReference), ExpressionList)))"},
		{"synchronized (this) {}", "StatementList(SynchronizedStmt(ThisExpr, CodeBlock*))"},
		{
			"do x(); while (y);",
			"StatementList(DoWhileStmt(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)), ReferenceExpr))",
		},
		{"while (true) ;", "StatementList(WhileStmt(LiteralExpr, EmptyStmt))"},
		{
			"x = switch (y) { default -> 1; };",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr, SwitchExpr(ReferenceExpr, CodeBlock(SwitchLabeledRule(ExpressionStmt(LiteralExpr)))))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := parseStatements(t, tt.src)
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
			if diags := messages(root); len(diags) > 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestEagerStatementOutlines(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{
			"switch (x) { case 1 -> foo(); default -> {} }",
			"StatementList(SwitchStmt(ReferenceExpr, CodeBlock(SwitchLabeledRule(CaseLabelElementList(LiteralExpr), ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList))), SwitchLabeledRule(BlockStmt(CodeBlock)))))",
		},
		{
			"switch (o) { case String s when s.isEmpty() -> {} }",
			"StatementList(SwitchStmt(ReferenceExpr, CodeBlock(SwitchLabeledRule(CaseLabelElementList(TypeTestPattern(ModifierList, Type(CodeReference), PatternVariable)), MethodCallExpr(ReferenceExpr(ReferenceExpr), ExpressionList), BlockStmt(CodeBlock)))))",
		},
		{
			"switch (x) { case 1: case 2: a(); break; default: }",
			"StatementList(SwitchStmt(ReferenceExpr, CodeBlock(SwitchLabelStmt(CaseLabelElementList(LiteralExpr)), SwitchLabelStmt(CaseLabelElementList(LiteralExpr)), ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)), BreakStmt, SwitchLabelStmt)))",
		},
		{
			"try { } catch (IOException | SQLException e) { } finally { }",
			"StatementList(TryStmt(CodeBlock, CatchSection(Parameter(ModifierList, Type(Type(CodeReference), Type(CodeReference))), CodeBlock), CodeBlock))",
		},
		{
			"try (var r = open()) { }",
			"StatementList(TryStmt(ResourceList(ResourceVariable(ModifierList, Type, MethodCallExpr(ReferenceExpr, ExpressionList))), CodeBlock))",
		},
		{
			"x = switch (y) { default -> { yield 3; } };",
			"StatementList(ExpressionStmt(AssignmentExpr(ReferenceExpr, SwitchExpr(ReferenceExpr, CodeBlock(SwitchLabeledRule(BlockStmt(CodeBlock(YieldStmt(LiteralExpr)))))))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := parseStatements(t, tt.src, eager())
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
			if diags := messages(root); len(diags) > 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestUnnamedPatternNeedsLevel22(t *testing.T) {
	src := "switch (p) { case Point(int x, _) -> {} }"
	root := parseStatements(t, src, withConfig(func(c *Config) {
		c.LazyBlocks = false
		c.LanguageLevel = "22"
	}))
	want := "StatementList(SwitchStmt(ReferenceExpr, CodeBlock(SwitchLabeledRule(CaseLabelElementList(DeconstructionPattern(ModifierList, Type(CodeReference), DeconstructionList(TypeTestPattern(ModifierList, Type, PatternVariable), UnnamedPattern))), BlockStmt(CodeBlock)))))"
	if got := root.Outline(); got != want {
		t.Errorf("outline mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestStatementDiagnostics(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"if (x) else y;", "Statement expected"},
		{"while (x)", "Statement expected"},
		{"if x", "'(' expected"},
		{"do x(); y", "'while' expected"},
		{"x = 1", "';' expected"},
		{"try {}", "'catch' or 'finally' expected"},
		{"try {} catch () {}", "Parameter expected"},
		{"try {} catch (E) {}", "Identifier expected"},
		{"try (var r = x) {} catch {}", "'(' expected"},
		{"catch", "'catch' without 'try'"},
		{"finally", "'finally' without 'try'"},
		{"else", "'else' without 'if'"},
		{"assert ;", "Boolean expression expected"},
		{"throw ;", "Expression expected"},
		{"for (String s : xs", "')' expected"},
		{"{ a();", "'}' expected"},
		{"case ;", "Case label element expected"},
		{"Foo<Bar> ;", "Identifier expected"},
		{")", "Unexpected token"},
		{"switch (x) { case 1 -> ; }", "Expected switch rule"},
		{"switch (x) { case 1 -> {}; }", "Expected switch label"},
		{"switch (x) { case 1 }", "':' expected"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := parseStatements(t, tt.src, eager())
			got := messages(root)
			if len(got) == 0 {
				t.Fatalf("no diagnostics, want %q", tt.want)
			}
			if got[0] != tt.want {
				t.Errorf("first diagnostic = %q, want %q (all: %v)", got[0], tt.want, got)
			}
		})
	}
}

func TestCaseLabelMessageFollowsLevel(t *testing.T) {
	root := parseStatements(t, "case ;", atLevel("17"))
	if got := messages(root); len(got) == 0 || got[0] != "Expression expected" {
		t.Errorf("diagnostics at level 17 = %v, want Expression expected first", got)
	}
}

func TestYieldDependsOnLevel(t *testing.T) {
	tests := []struct {
		level string
		src   string
		want  string
	}{
		{"21", "yield x;", "StatementList(YieldStmt(ReferenceExpr))"},
		{"21", "yield ++x;", "StatementList(YieldStmt(PrefixExpr(ReferenceExpr)))"},
		{"21", "yield++;", "StatementList(ExpressionStmt(PostfixExpr(ReferenceExpr)))"},
		{"11", "yield x;", "StatementList(DeclarationStmt(LocalVariable(ModifierList, Type(CodeReference))))"},
		{"21", "yield (5);", "StatementList(YieldStmt(ParenthExpr(LiteralExpr)))"},
		{"11", "yield (5);", "StatementList(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList(LiteralExpr))))"},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.src, func(t *testing.T) {
			root := parseStatements(t, tt.src, atLevel(tt.level))
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}

	root := parseStatements(t, "yield x;")
	stmt := root.Find(tree.KindYieldStmt)[0]
	if kw := stmt.Children[0]; kw.Token == nil || kw.Token.Kind != lexer.TokenYield {
		t.Errorf("yield keyword not remapped: %v", kw)
	}
}

func TestDanglingClauses(t *testing.T) {
	tests := []struct {
		src     string
		keyword string
		want    string
	}{
		{"else { }", "else", "StatementList(Error, BlockStmt(CodeBlock*))"},
		{"else x();", "else", "StatementList(Error, ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)))"},
		{"finally { }", "finally", "StatementList(Error, BlockStmt(CodeBlock*))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := parseStatements(t, tt.src)
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
			errNode := root.Children[0]
			if !errNode.IsError() || errNode.Text() != tt.keyword {
				t.Errorf("error node should wrap %q:\n%s", tt.keyword, root)
			}
		})
	}
}

func TestTokensBelongToTheirStatement(t *testing.T) {
	root := parseStatements(t, "foo(x);")
	if len(root.Children) != 1 {
		t.Fatalf("root holds %d children, want 1:\n%s", len(root.Children), root)
	}
	stmt := root.Children[0]
	if stmt.Kind != tree.KindExpressionStmt || !stmt.HasToken(lexer.TokenSemicolon) {
		t.Fatalf("';' should belong to the expression statement:\n%s", root)
	}
	call := stmt.FirstChildOfKind(tree.KindMethodCallExpr)
	if call == nil {
		t.Fatalf("no method call:\n%s", root)
	}
	callee := call.FirstChildOfKind(tree.KindReferenceExpr)
	if callee == nil || callee.Text() != "foo" {
		t.Errorf("callee should hold foo:\n%s", root)
	}
	if got := call.Text(); got != "foo ( x )" {
		t.Errorf("call text = %q", got)
	}
}

func TestVarIsRemapped(t *testing.T) {
	root := parseStatements(t, "var x = 1;")
	typ := root.Find(tree.KindType)
	if len(typ) != 1 {
		t.Fatalf("found %d types, want 1", len(typ))
	}
	if !typ[0].HasToken(lexer.TokenVar) {
		t.Errorf("type %s does not hold a var token", typ[0])
	}
}

func TestTuples(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"parenthesized", "return (a, b);", "StatementList(ReturnStmt(TupleExpr(TupleValue(ReferenceExpr), TupleValue(ReferenceExpr))))"},
		{"labeled", "return (x: 1, y: 2);", "StatementList(ReturnStmt(TupleExpr(TupleValue(LiteralExpr), TupleValue(LiteralExpr))))"},
		{"bare", "return a, b;", "StatementList(ReturnStmt(TupleExpr(TupleValue(ReferenceExpr), TupleValue(ReferenceExpr))))"},
		{"single value", "return (a);", "StatementList(ReturnStmt(ParenthExpr(ReferenceExpr)))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseStatements(t, tt.src)
			if got := root.Outline(); got != tt.want {
				t.Errorf("outline mismatch\n got: %s\nwant: %s", got, tt.want)
			}
			if tree.HasErrors(root) {
				t.Errorf("unexpected diagnostics: %v", messages(root))
			}
		})
	}
}

func TestTuplesDisabled(t *testing.T) {
	off := withConfig(func(c *Config) { c.Extensions.Tuples = false })
	root := parseStatements(t, "return (a, b);", off)
	if len(root.Find(tree.KindTupleExpr)) != 0 {
		t.Errorf("tuple parsed with tuples disabled: %s", root.Outline())
	}
	if !tree.HasErrors(root) {
		t.Errorf("expected a diagnostic for the comma, got %s", root.Outline())
	}
}

func TestDeclarationProbesLeaveNoTrace(t *testing.T) {
	inputs := []string{
		"a < b;",
		"a < b > c;",
		"Foo<Bar>::new;",
		"List<String> xs = new ArrayList<>();",
		"foo;",
		"x.y = z;",
		"int.class;",
	}
	for _, src := range inputs {
		root := parseStatements(t, src)
		if diags := messages(root); len(diags) > 0 {
			t.Errorf("%q: unexpected diagnostics %v in %s", src, diags, root.Outline())
		}
	}
}

func TestParsingAlwaysTerminates(t *testing.T) {
	inputs := []string{
		"", "(((", "for (", "switch (x) { case", "try", "if", "a.", "new",
		"x instanceof", "@", "case ->", "}}}", "int[", "Foo<", "<<>>",
		"default:", "record R(", "class {", "else else", "x -> ", "(a, ",
		"a ? b", "new int[", "@A(", "for (var (x) :", "enum E { A(",
		"switch (x) { case String s when }", "yield", "non-", "/*", "\"abc",
	}
	for _, src := range inputs {
		for _, opt := range []Option{eager(), WithConfig(DefaultConfig())} {
			root := parseStatements(t, src, opt)
			if got := root.Span.End.Offset; got != len(src) {
				t.Errorf("%q: root ends at %d, want %d", src, got, len(src))
			}
		}
	}
}

func TestUnexpectedBraceAtTopLevel(t *testing.T) {
	root := parseStatements(t, "a(); } b();")
	want := "StatementList(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)), Error, ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList)))"
	if got := root.Outline(); got != want {
		t.Errorf("outline mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestDeepCodeBlocks(t *testing.T) {
	deep := withConfig(func(c *Config) { c.DeepCodeBlocks = true })
	root := parseStatements(t, "if (a) { b(); }", deep)
	want := "StatementList(IfStmt(ReferenceExpr, BlockStmt(CodeBlock(ExpressionStmt(MethodCallExpr(ReferenceExpr, ExpressionList))))))"
	if got := root.Outline(); got != want {
		t.Errorf("outline mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestFragmentRegions(t *testing.T) {
	var seen []string
	handler := RegionHandlerFunc(func(tok lexer.Token) {
		seen = append(seen, tok.Literal)
	})
	root := parseStatements(t, "a(); /*[>Foo.sql<]*/ b();", WithRegionHandler(handler))

	if got := len(root.Find(tree.KindExpressionStmt)); got != 2 {
		t.Errorf("found %d statements, want 2", got)
	}
	if tree.HasErrors(root) {
		t.Errorf("unexpected diagnostics: %v", messages(root))
	}
	if len(seen) != 1 || seen[0] != "/*[>Foo.sql<]*/" {
		t.Errorf("regions = %v", seen)
	}
}
