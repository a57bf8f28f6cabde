package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

func (s *StatementParser) parseTryStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	hasResourceList := b.TokenType() == lexer.TokenLParen
	if hasResourceList {
		s.decl.ParseResourceList(b)
	}

	switch tryBlock := s.ParseCodeBlock(b, true); {
	case tryBlock == nil:
		b.Error(msgExpectedLBrace)
	case !hasResourceList && b.TokenType() != lexer.TokenCatch && b.TokenType() != lexer.TokenFinally:
		b.Error(msgExpectedCatch)
	default:
		for b.TokenType() == lexer.TokenCatch {
			if !s.parseCatchBlock(b) {
				break
			}
		}
		if b.Expect(lexer.TokenFinally) {
			if s.ParseCodeBlock(b, true) == nil {
				b.Error(msgExpectedLBrace)
			}
		}
	}

	statement.Done(tree.KindTryStmt)
	return statement
}

// parseCatchBlock parses one catch section and reports whether it was
// complete.
func (s *StatementParser) parseCatchBlock(b *tree.Builder) bool {
	section := b.Mark()
	b.Advance()

	if !b.Expect(lexer.TokenLParen) {
		b.Error(msgExpectedLParen)
		section.Done(tree.KindCatchSection)
		return false
	}

	if s.decl.ParseParameter(b, ParamOptions{Disjunction: true}) == nil {
		b.Error(msgExpectedParameter)
	}

	if !b.Expect(lexer.TokenRParen) {
		b.Error(msgExpectedRParen)
		section.Done(tree.KindCatchSection)
		return false
	}

	if s.ParseCodeBlock(b, true) == nil {
		b.Error(msgExpectedLBrace)
		section.Done(tree.KindCatchSection)
		return false
	}

	section.Done(tree.KindCatchSection)
	return true
}
