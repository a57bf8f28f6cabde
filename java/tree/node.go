package tree

import (
	"strings"

	"github.com/dhamidi/xjava/java/lexer"
)

// LazyRegion is the un-descended interior of a deferred code block. It keeps
// every token of the block, trivia included, so that the block can be parsed
// on demand by the same grammar.
type LazyRegion struct {
	Tokens []lexer.Token

	// Closed is false when input ended before the matching '}'.
	Closed bool
}

type Node struct {
	Kind     NodeKind
	Span     lexer.Span
	Children []*Node
	Token    *lexer.Token
	Error    string
	Lazy     *LazyRegion

	// GreedyRight is set when the node's right edge swallowed trailing
	// whitespace and comments because its closing token was missing.
	GreedyRight bool
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

func (n *Node) IsLeaf() bool {
	return n.Kind == KindToken
}

func (n *Node) IsLazy() bool {
	return n.Lazy != nil
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Composite returns the children that are not token leaves.
func (n *Node) Composite() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind != KindToken {
			result = append(result, child)
		}
	}
	return result
}

// HasToken reports whether n directly contains a leaf of the given kind.
func (n *Node) HasToken(kind lexer.TokenKind) bool {
	for _, child := range n.Children {
		if child.Kind == KindToken && child.Token.Kind == kind {
			return true
		}
	}
	return false
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Text joins the literals of every token below n with single spaces.
// Lazy regions contribute their raw tokens.
func (n *Node) Text() string {
	var parts []string
	n.collectText(&parts)
	return strings.Join(parts, " ")
}

func (n *Node) collectText(parts *[]string) {
	if n.Token != nil {
		*parts = append(*parts, n.Token.Literal)
		return
	}
	if n.Lazy != nil {
		for _, tok := range n.Lazy.Tokens {
			if !tok.Kind.IsTrivia() {
				*parts = append(*parts, tok.Literal)
			}
		}
		return
	}
	for _, child := range n.Children {
		child.collectText(parts)
	}
}

// Walk calls fn for n and its descendants in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns every descendant of n (n included) of the given kind.
func (n *Node) Find(kind NodeKind) []*Node {
	var result []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			result = append(result, c)
		}
		return true
	})
	return result
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Token != nil {
		sb.WriteString(n.Token.Kind.String())
		sb.WriteString(" ")
		sb.WriteString(n.Token.Literal)
	} else {
		sb.WriteString(n.Kind.String())
	}
	if showPositions {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Lazy != nil {
		sb.WriteString(" (lazy)")
	}
	if n.Error != "" {
		sb.WriteString(" ERROR: " + n.Error)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}

// Outline renders the composite structure of n on one line, leaving out
// token leaves: IfStmt(ReferenceExpr, BlockStmt(CodeBlock)).
func (n *Node) Outline() string {
	var sb strings.Builder
	n.writeOutline(&sb)
	return sb.String()
}

func (n *Node) writeOutline(sb *strings.Builder) {
	sb.WriteString(n.Kind.String())
	if n.Lazy != nil {
		sb.WriteString("*")
	}
	children := n.Composite()
	if len(children) == 0 {
		return
	}
	sb.WriteString("(")
	for i, child := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		child.writeOutline(sb)
	}
	sb.WriteString(")")
}
