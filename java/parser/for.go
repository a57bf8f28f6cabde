package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

func (s *StatementParser) parseForStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if !b.Expect(lexer.TokenLParen) {
		b.Error(msgExpectedLParen)
		statement.Done(tree.KindForStmt)
		return statement
	}

	if s.isRecordPatternInForEach(b) {
		s.pattern.ParsePattern(b)
		if b.TokenType() == lexer.TokenColon {
			return s.parseForEachFromColon(b, statement, tree.KindForeachPatternStmt)
		}
		b.Error(msgExpectedColon)
		for {
			switch b.TokenType() {
			case lexer.TokenEOF:
				statement.Done(tree.KindForeachPatternStmt)
				return statement
			case lexer.TokenRParen:
				return s.parseForEachFromRParen(b, statement, tree.KindForeachPatternStmt)
			}
			b.Advance()
		}
	}

	afterParen := b.Mark()
	param := s.decl.ParseParameter(b, ParamOptions{VarType: true})
	if param == nil || param.Kind() != tree.KindParameter || b.TokenType() != lexer.TokenColon {
		afterParen.Rollback()
		return s.parseForLoopFromInitializer(b, statement)
	}
	afterParen.Drop()
	return s.parseForEachFromColon(b, statement, tree.KindForeachStmt)
}

// isRecordPatternInForEach tells for (Point(var x, var y) : ps) apart
// from for (foo(); ;) by looking past the balanced parentheses.
func (s *StatementParser) isRecordPatternInForEach(b *tree.Builder) bool {
	patternStart := s.pattern.PreParsePattern(b)
	if patternStart == nil {
		return false
	}
	defer patternStart.Rollback()

	if b.TokenType() != lexer.TokenLParen {
		return false
	}
	b.Advance()

	balance := 1
	for {
		switch b.TokenType() {
		case lexer.TokenEOF:
			return false
		case lexer.TokenLParen:
			balance++
		case lexer.TokenRParen:
			balance--
		}
		if balance == 0 {
			break
		}
		b.Advance()
	}
	b.Advance()
	return b.TokenType() != lexer.TokenSemicolon && b.TokenType() != lexer.TokenDot
}

func (s *StatementParser) parseForLoopFromInitializer(b *tree.Builder, statement *tree.Marker) *tree.Marker {
	if s.ParseStatement(b) == nil {
		b.Error(msgExpectedStatement)
		if !b.Expect(lexer.TokenRParen) {
			statement.Done(tree.KindForStmt)
			return statement
		}
	} else {
		missingSemicolon := false
		if b.PrevTokenType() != lexer.TokenSemicolon {
			missingSemicolon = !b.ExpectOrError(lexer.TokenSemicolon, msgExpectedSemicolon)
		}

		expr := s.expr.Parse(b)
		missingSemicolon = missingSemicolon && expr == nil

		if !b.Expect(lexer.TokenSemicolon) {
			if !missingSemicolon {
				b.Error(msgExpectedSemicolon)
			}
			if !b.Expect(lexer.TokenRParen) {
				statement.Done(tree.KindForStmt)
				return statement
			}
		} else {
			s.parseForUpdateExpressions(b)
			if !b.Expect(lexer.TokenRParen) {
				b.Error(msgExpectedRParen)
				statement.Done(tree.KindForStmt)
				return statement
			}
		}
	}

	if s.ParseStatement(b) == nil {
		b.Error(msgExpectedStatement)
	}

	statement.Done(tree.KindForStmt)
	return statement
}

func (s *StatementParser) parseForUpdateExpressions(b *tree.Builder) {
	expr := s.expr.Parse(b)
	if expr == nil {
		return
	}

	if b.TokenType() != lexer.TokenComma {
		statement := expr.Precede()
		statement.Done(tree.KindExpressionStmt)
		return
	}

	list := expr.Precede()
	statement := list.Precede()
	for b.TokenType() == lexer.TokenComma {
		b.Advance()
		if s.expr.Parse(b) == nil {
			b.Error(msgExpectedExpression)
		}
	}
	list.Done(tree.KindExpressionList)
	statement.Done(tree.KindExpressionListStmt)
}

func (s *StatementParser) parseForEachFromColon(b *tree.Builder, statement *tree.Marker, kind tree.NodeKind) *tree.Marker {
	b.Advance()

	if s.expr.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	}

	return s.parseForEachFromRParen(b, statement, kind)
}

func (s *StatementParser) parseForEachFromRParen(b *tree.Builder, statement *tree.Marker, kind tree.NodeKind) *tree.Marker {
	if b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen) && s.ParseStatement(b) == nil {
		b.Error(msgExpectedStatement)
	}

	statement.Done(kind)
	return statement
}
