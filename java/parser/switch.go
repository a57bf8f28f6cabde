package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

// parseCaseLabel parses one case label element. The second result reports
// whether the element was parsed as an expression.
func (s *StatementParser) parseCaseLabel(b *tree.Builder) (*tree.Marker, bool) {
	if b.TokenType() == lexer.TokenDefault {
		element := b.Mark()
		b.Advance()
		element.Done(tree.KindDefaultCaseLabelElement)
		return element, false
	}
	if s.pattern.IsPattern(b) {
		return s.pattern.ParsePattern(b), false
	}
	return s.expr.ParseAssignmentForbiddingLambda(b), true
}

func (s *StatementParser) parseSwitchLabelStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	isCase := b.TokenType() == lexer.TokenCase
	b.Advance()

	if isCase {
		message := msgExpectedExpression
		if s.features[FeaturePatternsInSwitch] {
			message = msgExpectedCaseLabel
		}
		list := b.Mark()
		for {
			if label, _ := s.parseCaseLabel(b); label == nil {
				b.Error(message)
			}
			if !b.Expect(lexer.TokenComma) {
				break
			}
		}
		list.Done(tree.KindCaseLabelElementList)
		s.parseGuard(b)
	}

	if !b.Expect(lexer.TokenArrow) {
		b.ExpectOrError(lexer.TokenColon, msgExpectedColon)
		statement.Done(tree.KindSwitchLabelStmt)
		return statement
	}

	switch b.TokenType() {
	case lexer.TokenLBrace:
		body := b.Mark()
		s.ParseCodeBlock(b, true)
		body.Done(tree.KindBlockStmt)
		if b.TokenType() == lexer.TokenSemicolon {
			stray := b.Mark()
			for b.TokenType() == lexer.TokenSemicolon {
				b.Advance()
			}
			stray.Error(msgExpectedSwitchLabel)
		}
	case lexer.TokenThrow:
		s.parseThrowStatement(b)
	default:
		if expr := s.expr.Parse(b); expr != nil {
			body := expr.Precede()
			s.semicolon(b)
			body.Done(tree.KindExpressionStmt)
		} else {
			b.Error(msgExpectedSwitchRule)
			b.Expect(lexer.TokenSemicolon)
		}
	}

	statement.Done(tree.KindSwitchLabeledRule)
	return statement
}

// parseGuard parses an optional when clause. The guard expression follows
// the when keyword as a sibling of the label list.
func (s *StatementParser) parseGuard(b *tree.Builder) {
	if b.TokenType() != lexer.TokenIdent || b.TokenText() != "when" {
		return
	}
	b.RemapCurrentToken(lexer.TokenWhen)
	b.Advance()
	if s.expr.ParseAssignmentForbiddingLambda(b) == nil {
		b.Error(msgExpectedExpression)
	}
}
