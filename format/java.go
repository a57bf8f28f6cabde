package format

import (
	"io"
	"strings"

	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

// JavaEncoder prints the tokens of a tree as normalized Java source: one
// statement per line, blocks indented by four spaces. Lazy blocks are
// printed from their recorded tokens, so no expansion is needed. Comments
// are dropped.
type JavaEncoder struct {
	w    io.Writer
	root *tree.Node

	sb           strings.Builder
	indentStr    string
	depth        int
	parens       int
	atLineStart  bool
	pendingBreak bool
	prev         lexer.TokenKind
	prevParent   tree.NodeKind
	started      bool
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w, indentStr: "    "}
}

func (e *JavaEncoder) Encode(root *tree.Node) error {
	e.root = root
	return write(e.w, e)
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	e.sb.Reset()
	e.depth, e.parens = 0, 0
	e.atLineStart, e.pendingBreak, e.started = true, false, false
	if e.root != nil {
		e.printNode(e.root)
	}
	if !e.atLineStart {
		e.newline()
	}
	return []byte(e.sb.String()), nil
}

func (e *JavaEncoder) printNode(n *tree.Node) {
	if n.Lazy != nil {
		for _, tok := range n.Lazy.Tokens {
			if !tok.Kind.IsTrivia() {
				e.printToken(tok, n.Kind)
			}
		}
		return
	}
	for _, child := range n.Children {
		if child.Token != nil {
			e.printToken(*child.Token, n.Kind)
			continue
		}
		e.printNode(child)
	}
}

// joinsBrace lists tokens that stay on the line of a preceding '}'.
var joinsBrace = map[lexer.TokenKind]bool{
	lexer.TokenElse:      true,
	lexer.TokenCatch:     true,
	lexer.TokenFinally:   true,
	lexer.TokenWhile:     true,
	lexer.TokenRParen:    true,
	lexer.TokenSemicolon: true,
	lexer.TokenComma:     true,
	lexer.TokenDot:       true,
}

func (e *JavaEncoder) printToken(tok lexer.Token, parent tree.NodeKind) {
	if tok.Kind == lexer.TokenRBrace && e.depth > 0 {
		e.depth--
	}
	if e.pendingBreak {
		e.pendingBreak = false
		if !(e.prev == lexer.TokenRBrace && joinsBrace[tok.Kind]) {
			e.newline()
		}
	}
	if e.atLineStart {
		e.sb.WriteString(strings.Repeat(e.indentStr, e.depth))
		e.atLineStart = false
	} else if e.spaceBefore(tok.Kind, parent) {
		e.sb.WriteByte(' ')
	}
	e.sb.WriteString(tok.Literal)

	switch tok.Kind {
	case lexer.TokenLParen:
		e.parens++
	case lexer.TokenRParen:
		if e.parens > 0 {
			e.parens--
		}
	case lexer.TokenLBrace:
		e.depth++
		e.pendingBreak = true
	case lexer.TokenRBrace, lexer.TokenFragment:
		e.pendingBreak = true
	case lexer.TokenSemicolon:
		e.pendingBreak = e.parens == 0
	}
	e.prev, e.prevParent, e.started = tok.Kind, parent, true
}

func (e *JavaEncoder) newline() {
	e.sb.WriteByte('\n')
	e.atLineStart = true
}

func isGenericList(kind tree.NodeKind) bool {
	return kind == tree.KindTypeArgumentList || kind == tree.KindTypeParameterList
}

func (e *JavaEncoder) spaceBefore(cur lexer.TokenKind, parent tree.NodeKind) bool {
	if !e.started {
		return false
	}
	switch cur {
	case lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenComma, lexer.TokenSemicolon,
		lexer.TokenDot, lexer.TokenColonColon, lexer.TokenEllipsis:
		return false
	case lexer.TokenLParen:
		if e.prev == lexer.TokenIdent || e.prev == lexer.TokenThis || e.prev == lexer.TokenSuper ||
			e.prev == lexer.TokenGT && isGenericList(e.prevParent) {
			return false
		}
	case lexer.TokenLBracket:
		return false
	case lexer.TokenLT, lexer.TokenGT:
		if isGenericList(parent) {
			return false
		}
	case lexer.TokenIncrement, lexer.TokenDecrement:
		if parent == tree.KindPostfixExpr {
			return false
		}
	}

	switch e.prev {
	case lexer.TokenLParen, lexer.TokenLBracket, lexer.TokenDot, lexer.TokenAt, lexer.TokenColonColon:
		return false
	case lexer.TokenLT:
		return !isGenericList(e.prevParent)
	case lexer.TokenIncrement, lexer.TokenDecrement, lexer.TokenMinus, lexer.TokenPlus,
		lexer.TokenNot, lexer.TokenBitNot:
		return e.prevParent != tree.KindPrefixExpr
	}
	return true
}
