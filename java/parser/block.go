package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

type braceMode int

const (
	// braceNone treats every unmatched '}' as an unexpected token.
	braceNone braceMode = iota
	// braceTillFirst stops at the first unmatched '}'.
	braceTillFirst
	// braceTillLast stops at a '}' only when it is the last token.
	braceTillLast
)

// ParseCodeBlock parses a braced block. Statement blocks are parsed eagerly
// in deep mode; other blocks are recorded as lazy regions while lazy
// blocks are enabled.
func (s *StatementParser) ParseCodeBlock(b *tree.Builder, isStatement bool) *tree.Marker {
	if b.TokenType() != lexer.TokenLBrace {
		return nil
	}
	if !s.config.LazyBlocks || isStatement && (b.Deep() || s.config.DeepCodeBlocks) {
		return s.ParseCodeBlockDeep(b, false)
	}
	return s.parseBlockLazy(b)
}

// ParseCodeBlockDeep parses a braced block and its statements. With
// untilEOF set, stray '}' tokens before the last one are reported instead
// of ending the block.
func (s *StatementParser) ParseCodeBlockDeep(b *tree.Builder, untilEOF bool) *tree.Marker {
	if b.TokenType() != lexer.TokenLBrace {
		return nil
	}

	codeBlock := b.Mark()
	b.Advance()

	mode := braceTillFirst
	if untilEOF {
		mode = braceTillLast
	}
	s.parseStatements(b, mode)

	greedy := !b.ExpectOrError(lexer.TokenRBrace, msgExpectedRBrace)
	codeBlock.Done(tree.KindCodeBlock)
	if greedy {
		codeBlock.SetGreedyRight()
	}
	return codeBlock
}

// ParseStatements parses statements until end of input.
func (s *StatementParser) ParseStatements(b *tree.Builder) {
	s.parseStatements(b, braceNone)
}

func (s *StatementParser) parseStatements(b *tree.Builder, mode braceMode) {
	for !b.Eof() {
		before := b.Index()
		if s.ParseStatement(b) != nil || b.Index() != before {
			continue
		}

		tokenType := b.TokenType()
		if tokenType == lexer.TokenRBrace &&
			(mode == braceTillFirst || mode == braceTillLast && b.LookAhead(1) == lexer.TokenEOF) {
			break
		}

		bad := b.Mark()
		b.Advance()
		switch tokenType {
		case lexer.TokenElse:
			bad.Error(msgElseWithoutIf)
		case lexer.TokenCatch:
			bad.Error(msgCatchWithoutTry)
		case lexer.TokenFinally:
			bad.Error(msgFinallyWithoutTry)
		default:
			bad.Error(msgUnexpectedToken)
		}
	}
}

// parseBlockLazy records a brace balanced region without descending into
// it. An unterminated region runs to end of input.
func (s *StatementParser) parseBlockLazy(b *tree.Builder) *tree.Marker {
	block := b.Mark()
	b.Advance()

	balance := 1
	for !b.Eof() {
		switch b.TokenType() {
		case lexer.TokenLBrace:
			balance++
		case lexer.TokenRBrace:
			balance--
		}
		b.Advance()
		if balance == 0 {
			break
		}
	}

	closed := balance == 0
	block.DoneLazy(tree.KindCodeBlock, closed)
	if !closed {
		block.SetGreedyRight()
	}
	return block
}
