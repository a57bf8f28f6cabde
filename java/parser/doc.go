// Package parser parses Java statements and the code around them into a
// concrete syntax tree, tolerating incomplete and malformed input.
//
// # Overview
//
// Parsing runs over a token array held by a tree.Builder. Grammar
// functions place markers on the builder, consume tokens, and close the
// markers as nodes. Nothing is materialized until the parse is over, so a
// speculative attempt is undone by rolling back a marker: the cursor, the
// recorded nodes, any diagnostics, and any token remaps made since the
// marker all disappear together.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│  tree.Builder   │────▶│  tree.Node  │
//	│  (bytes)    │     │  (tokens)   │     │ (marker events) │     │   (CST)     │
//	└─────────────┘     └─────────────┘     └─────────────────┘     └─────────────┘
//	                                               ▲
//	                                               │ mark / done / rollback
//	                                        ┌──────┴──────┐
//	                                        │ Statement   │───▶ expression, declaration,
//	                                        │ Parser      │     pattern and type parsers
//	                                        └─────────────┘
//
// # Entry Points
//
// Each entry point returns a *Parser bound to a reader:
//
//	p := parser.ParseStatements(strings.NewReader("int x = 1; x++;"))
//	root := p.Finish()
//
// ParseCompilationUnit parses a source file, ParseStatements a statement
// sequence, ParseCodeBlock a single braced block and ParseExpression a
// single expression. Finish returns nil only on I/O or configuration
// errors; syntax errors are KindError nodes in the tree, which
// tree.Diagnostics collects.
//
// # Statement Parser
//
// StatementParser owns the statement grammar: if, loops including
// record-pattern for-each, switch labels with guards and arrow rules,
// try/catch/finally, jump statements, the contextual yield, and the
// resolution of prefixes that may start either a declaration or an
// expression. It reaches the rest of the grammar only through the
// ExpressionParser, DeclarationParser, PatternParser and ReferenceParser
// interfaces. JavaParser wires it to the default implementations.
//
// # Lazy Blocks
//
// With Config.LazyBlocks set, method bodies and nested blocks are recorded
// as brace-balanced token regions (tree.LazyRegion) instead of being
// parsed. Parser.ExpandBlock parses such a region on demand:
//
//	for _, block := range root.Find(tree.KindCodeBlock) {
//	    if block.IsLazy() {
//	        expanded := p.ExpandBlock(block)
//	        ...
//	    }
//	}
//
// A region whose closing brace is missing runs to end of input and its
// node binds trailing whitespace (tree.Node.GreedyRight). Parser.Diagnostics
// reports errors inside regions without keeping their expansions.
//
// # Configuration
//
// Config selects the language level, which gates constructs such as
// yield (14), sealed classes (17) and pattern labels (21), the lazy block
// policy, and the tuple extension:
//
//	cfg, err := parser.ParseConfig([]byte("language_level: \"11\"\n"))
//	p := parser.ParseStatements(r, parser.WithConfig(cfg))
//
// # Extensions
//
// Beyond standard Java the parser accepts tuple expressions such as
// return (a, b); and return (x: 1, y: 2); and fragment comments of the
// form /*[>Name.ext<]*/, which are handed to a RegionHandler and produce
// no node.
package parser
