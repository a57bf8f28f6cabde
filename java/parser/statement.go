package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const (
	msgExpectedLParen      = "'(' expected"
	msgExpectedRParen      = "')' expected"
	msgExpectedSemicolon   = "';' expected"
	msgExpectedLBrace      = "'{' expected"
	msgExpectedRBrace      = "'}' expected"
	msgExpectedColon       = "':' expected"
	msgExpectedExpression  = "Expression expected"
	msgExpectedStatement   = "Statement expected"
	msgExpectedWhile       = "'while' expected"
	msgExpectedIdentifier  = "Identifier expected"
	msgExpectedParameter   = "Parameter expected"
	msgExpectedBoolean     = "Boolean expression expected"
	msgExpectedCatch       = "'catch' or 'finally' expected"
	msgExpectedCaseLabel   = "Case label element expected"
	msgExpectedSwitchLabel = "Expected switch label"
	msgExpectedSwitchRule  = "Expected switch rule"
	msgElseWithoutIf       = "'else' without 'if'"
	msgCatchWithoutTry     = "'catch' without 'try'"
	msgFinallyWithoutTry   = "'finally' without 'try'"
	msgUnexpectedToken     = "Unexpected token"
)

// Tokens after which a yield identifier starts a yield statement. The last
// three are there for recovery in incomplete code.
var yieldIndicators = map[lexer.TokenKind]bool{
	lexer.TokenPlus:          true,
	lexer.TokenMinus:         true,
	lexer.TokenNot:           true,
	lexer.TokenBitNot:        true,
	lexer.TokenSuper:         true,
	lexer.TokenThis:          true,
	lexer.TokenTrue:          true,
	lexer.TokenFalse:         true,
	lexer.TokenNull:          true,
	lexer.TokenStringLiteral: true,
	lexer.TokenIntLiteral:    true,
	lexer.TokenFloatLiteral:  true,
	lexer.TokenCharLiteral:   true,
	lexer.TokenTextBlock:     true,
	lexer.TokenIdent:         true,
	lexer.TokenSwitch:        true,
	lexer.TokenNew:           true,
	lexer.TokenLParen:        true,

	lexer.TokenRBrace:    true,
	lexer.TokenSemicolon: true,
	lexer.TokenCase:      true,
}

// Collaborators bundles the services a StatementParser delegates to.
type Collaborators struct {
	Expressions  ExpressionParser
	Declarations DeclarationParser
	Patterns     PatternParser
	References   ReferenceParser

	// Regions is optional.
	Regions RegionHandler
}

// StatementParser parses Java statements, blocks and statement sequences
// into a tree.Builder. It is not safe for concurrent use.
type StatementParser struct {
	expr    ExpressionParser
	decl    DeclarationParser
	pattern PatternParser
	ref     ReferenceParser
	regions RegionHandler

	config   Config
	features map[Feature]bool
}

func NewStatementParser(c Collaborators, config Config) *StatementParser {
	s := &StatementParser{
		expr:     c.Expressions,
		decl:     c.Declarations,
		pattern:  c.Patterns,
		ref:      c.References,
		regions:  c.Regions,
		config:   config,
		features: make(map[Feature]bool),
	}
	for f := range featureConstraints {
		s.features[f] = config.Supports(f)
	}
	return s
}

// ParseStatement parses one statement and returns its marker, or nil when
// no statement starts at the cursor.
func (s *StatementParser) ParseStatement(b *tree.Builder) *tree.Marker {
	switch tokenType := b.TokenType(); {
	case tokenType == lexer.TokenIf:
		return s.parseIfStatement(b)
	case tokenType == lexer.TokenWhile:
		return s.parseExprInParenthWithBlock(b, tree.KindWhileStmt, false)
	case tokenType == lexer.TokenFor:
		return s.parseForStatement(b)
	case tokenType == lexer.TokenDo:
		return s.parseDoWhileStatement(b)
	case tokenType == lexer.TokenSwitch:
		return s.parseExprInParenthWithBlock(b, tree.KindSwitchStmt, true)
	case tokenType == lexer.TokenCase, tokenType == lexer.TokenDefault:
		return s.parseSwitchLabelStatement(b)
	case tokenType == lexer.TokenBreak:
		return s.parseJumpStatement(b, tree.KindBreakStmt)
	case s.isStmtYieldToken(b):
		return s.parseYieldStatement(b)
	case tokenType == lexer.TokenContinue:
		return s.parseJumpStatement(b, tree.KindContinueStmt)
	case tokenType == lexer.TokenReturn:
		return s.parseReturnStatement(b)
	case tokenType == lexer.TokenThrow:
		return s.parseThrowStatement(b)
	case tokenType == lexer.TokenSynchronized:
		return s.parseExprInParenthWithBlock(b, tree.KindSynchronizedStmt, true)
	case tokenType == lexer.TokenTry:
		return s.parseTryStatement(b)
	case tokenType == lexer.TokenAssert:
		return s.parseAssertStatement(b)
	case tokenType == lexer.TokenLBrace:
		return s.parseBlockStatement(b)
	case tokenType == lexer.TokenFragment:
		tok := b.Token()
		b.Advance()
		if s.regions != nil {
			s.regions.HandleRegion(tok)
		}
		return nil
	case tokenType == lexer.TokenSemicolon:
		empty := b.Mark()
		b.Advance()
		empty.Done(tree.KindEmptyStmt)
		return empty
	}
	return s.parseDeclarationOrExpression(b)
}

func (s *StatementParser) parseDeclarationOrExpression(b *tree.Builder) *tree.Marker {
	if tokenType := b.TokenType(); tokenType == lexer.TokenIdent || tokenType == lexer.TokenAt {
		refPos := b.Mark()
		nonSealed := isNonSealed(b)
		s.decl.ParseAnnotations(b)
		skipQualifiedName(b)
		suspectedLT, next := b.TokenType(), b.LookAhead(1)
		refPos.Rollback()

		if suspectedLT == lexer.TokenLT || suspectedLT == lexer.TokenDot && next == lexer.TokenAt || nonSealed {
			declStatement := b.Mark()
			if s.decl.Parse(b, ContextCodeBlock) != nil {
				declStatement.Done(tree.KindDeclarationStmt)
				return declStatement
			}

			info := s.ref.ParseTypeInfo(b, 0)
			switch {
			case suspectedLT == lexer.TokenLT && (info == nil || !info.Parameterized):
				// a less-than operator, not a type argument list
				declStatement.Rollback()
			case info == nil || b.TokenType() != lexer.TokenColonColon:
				b.Error(msgExpectedIdentifier)
				if info == nil {
					b.Advance()
				}
				declStatement.Done(tree.KindDeclarationStmt)
				return declStatement
			default:
				// Foo<Bar>::new is a constructor reference
				declStatement.Rollback()
			}
		}
	}

	pos := b.Mark()
	expr := s.expr.Parse(b)
	if expr != nil {
		count := 1
		list := expr.Precede()
		statement := list.Precede()
		for b.TokenType() == lexer.TokenComma {
			commaPos := b.Mark()
			b.Advance()
			if s.expr.Parse(b) == nil {
				commaPos.Rollback()
				break
			}
			commaPos.Drop()
			count++
		}
		if count > 1 {
			pos.Drop()
			list.Done(tree.KindExpressionList)
			s.semicolon(b)
			statement.Done(tree.KindExpressionListStmt)
			return statement
		}
		if expr.Kind() != tree.KindReferenceExpr {
			list.Drop()
			pos.Drop()
			s.semicolon(b)
			statement.Done(tree.KindExpressionStmt)
			return statement
		}
		pos.Rollback()
	} else {
		pos.Drop()
	}

	if decl := s.decl.Parse(b, ContextCodeBlock); decl != nil {
		statement := decl.Precede()
		statement.Done(tree.KindDeclarationStmt)
		return statement
	}

	if b.TokenType() == lexer.TokenIdent && b.LookAhead(1) == lexer.TokenColon {
		statement := b.Mark()
		b.AdvanceN(2)
		s.ParseStatement(b)
		statement.Done(tree.KindLabeledStmt)
		return statement
	}

	if expr != nil {
		statement := b.Mark()
		s.expr.Parse(b)
		s.semicolon(b)
		statement.Done(tree.KindExpressionStmt)
		return statement
	}

	return nil
}

func (s *StatementParser) isStmtYieldToken(b *tree.Builder) bool {
	if b.TokenType() != lexer.TokenIdent || b.TokenText() != "yield" || !s.features[FeatureSwitchExpressions] {
		return false
	}
	maybeYield := b.Mark()
	defer maybeYield.Rollback()
	b.Advance()
	after := b.TokenType()
	if after == lexer.TokenEOF || yieldIndicators[after] {
		return true
	}
	if after == lexer.TokenIncrement || after == lexer.TokenDecrement {
		b.Advance()
		return b.TokenType() != lexer.TokenSemicolon
	}
	return false
}

// isNonSealed reports whether the cursor is at the three tokens of the
// non-sealed modifier.
func isNonSealed(b *tree.Builder) bool {
	return b.TokenType() == lexer.TokenIdent && b.TokenText() == "non" &&
		b.LookAhead(1) == lexer.TokenMinus && b.Adjacent(1) &&
		b.LookAhead(2) == lexer.TokenIdent && b.LookAheadText(2) == "sealed" && b.Adjacent(2)
}

func skipQualifiedName(b *tree.Builder) {
	if !b.Expect(lexer.TokenIdent) {
		return
	}
	for b.TokenType() == lexer.TokenDot && b.LookAhead(1) == lexer.TokenIdent {
		b.AdvanceN(2)
	}
}

func (s *StatementParser) semicolon(b *tree.Builder) bool {
	return b.ExpectOrError(lexer.TokenSemicolon, msgExpectedSemicolon)
}

func (s *StatementParser) parseIfStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if s.parseExprInParenth(b) {
		if s.ParseStatement(b) == nil {
			b.Error(msgExpectedStatement)
		} else if b.Expect(lexer.TokenElse) {
			if s.ParseStatement(b) == nil {
				b.Error(msgExpectedStatement)
			}
		}
	}

	statement.Done(tree.KindIfStmt)
	return statement
}

func (s *StatementParser) parseDoWhileStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if s.ParseStatement(b) == nil {
		b.Error(msgExpectedStatement)
	} else if !b.Expect(lexer.TokenWhile) {
		b.Error(msgExpectedWhile)
	} else if s.parseExprInParenth(b) {
		s.semicolon(b)
	}

	statement.Done(tree.KindDoWhileStmt)
	return statement
}

// parseJumpStatement parses break and continue with an optional label.
func (s *StatementParser) parseJumpStatement(b *tree.Builder, kind tree.NodeKind) *tree.Marker {
	statement := b.Mark()
	b.Advance()
	b.Expect(lexer.TokenIdent)
	s.semicolon(b)
	statement.Done(kind)
	return statement
}

func (s *StatementParser) parseYieldStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.RemapCurrentToken(lexer.TokenYield)
	b.Advance()

	if s.expr.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	} else {
		s.semicolon(b)
	}

	statement.Done(tree.KindYieldStmt)
	return statement
}

func (s *StatementParser) parseReturnStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()
	s.expr.ParseTupleOrExpr(b)
	s.semicolon(b)
	statement.Done(tree.KindReturnStmt)
	return statement
}

func (s *StatementParser) parseThrowStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if s.expr.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	} else {
		s.semicolon(b)
	}

	statement.Done(tree.KindThrowStmt)
	return statement
}

func (s *StatementParser) parseAssertStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if s.expr.Parse(b) == nil {
		b.Error(msgExpectedBoolean)
	} else if b.Expect(lexer.TokenColon) && s.expr.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	} else {
		s.semicolon(b)
	}

	statement.Done(tree.KindAssertStmt)
	return statement
}

func (s *StatementParser) parseBlockStatement(b *tree.Builder) *tree.Marker {
	statement := b.Mark()
	s.ParseCodeBlock(b, true)
	statement.Done(tree.KindBlockStmt)
	return statement
}

// parseExprInParenthWithBlock parses keyword (expr) followed by a block
// when block is set, or by any statement otherwise.
func (s *StatementParser) parseExprInParenthWithBlock(b *tree.Builder, kind tree.NodeKind, block bool) *tree.Marker {
	statement := b.Mark()
	b.Advance()

	if s.parseExprInParenth(b) {
		var body *tree.Marker
		if block {
			body = s.ParseCodeBlock(b, true)
		} else {
			body = s.ParseStatement(b)
		}
		if body == nil {
			if block {
				b.Error(msgExpectedLBrace)
			} else {
				b.Error(msgExpectedStatement)
			}
		}
	}

	statement.Done(kind)
	return statement
}

func (s *StatementParser) parseExprInParenth(b *tree.Builder) bool {
	if !b.Expect(lexer.TokenLParen) {
		b.Error(msgExpectedLParen)
		return false
	}

	beforeExpr := b.Mark()
	expr := s.expr.Parse(b)
	if expr == nil || b.TokenType() == lexer.TokenSemicolon {
		beforeExpr.Rollback()
		b.Error(msgExpectedExpression)
		if b.TokenType() != lexer.TokenRParen {
			return false
		}
	} else {
		beforeExpr.Drop()
		if b.TokenType() != lexer.TokenRParen {
			b.Error(msgExpectedRParen)
			return false
		}
	}

	b.Advance()
	return true
}
