package lexer

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Lexer turns Java source into tokens. Whitespace and comments are
// returned as trivia tokens so that the tree builder can attach them to
// node edges.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// Tokenize lexes the whole input. The result always ends with a TokenEOF.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()
	switch {
	case ch == '/' && l.peekN(1) == '/':
		return l.scanLineComment(start)
	case ch == '/' && l.peekN(1) == '*':
		return l.scanBlockComment(start)
	case isSpace(ch):
		return l.scanWhitespace(start)
	case isJavaStart(l.input[l.pos:]):
		return l.scanIdentOrKeyword(start)
	case isDigit(ch), ch == '.' && isDigit(l.peekN(1)):
		return l.scanNumber(start)
	case ch == '\'':
		return l.scanCharLiteral(start)
	case ch == '"':
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(start)
		}
		return l.scanStringLiteral(start)
	}
	return l.scanOperator(start)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

var fragmentOpen = []byte("/*[>")

func (l *Lexer) scanBlockComment(start Position) Token {
	kind := TokenComment
	if bytes.HasPrefix(l.input[l.pos:], fragmentOpen) {
		kind = TokenFragment
	}
	l.advanceN(2)
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(kind, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for l.pos < len(l.input) && isJavaLetterOrDigit(l.input[l.pos:]) {
		l.advanceRune()
	}
	tok := l.token(TokenIdent, start)
	tok.Kind = LookupKeyword(tok.Literal)
	return tok
}

func (l *Lexer) advanceRune() {
	if l.peek() < utf8.RuneSelf {
		l.advance()
		return
	}
	_, size := utf8.DecodeRune(l.input[l.pos:])
	l.pos += size
	l.column++
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHexNumber(start)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.advanceN(2)
		for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
			l.advance()
		}
		if l.peek() == 'l' || l.peek() == 'L' {
			l.advance()
		}
		return l.token(TokenIntLiteral, start)
	}

	isFloat := false
	l.skipDigits()
	if l.peek() == '.' && isDigit(l.peekN(1)) || l.peek() == '.' && !isJavaLetter(l.peekN(1)) && l.peekN(1) != '.' {
		isFloat = true
		l.advance()
		l.skipDigits()
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.skipDigits()
	}

	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		l.advance()
	case 'l', 'L':
		l.advance()
	}

	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) skipDigits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) scanHexNumber(start Position) Token {
	l.advanceN(2)
	for isHexDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if l.peek() == 'p' || l.peek() == 'P' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.skipDigits()
	}
	switch {
	case isFloat && (l.peek() == 'f' || l.peek() == 'F' || l.peek() == 'd' || l.peek() == 'D'):
		l.advance()
	case !isFloat && (l.peek() == 'l' || l.peek() == 'L'):
		l.advance()
	}
	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	for l.pos < len(l.input) && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '\'' {
		l.advance()
	}
	return l.token(TokenCharLiteral, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for l.pos < len(l.input) && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanTextBlock(start Position) Token {
	l.advanceN(3)
	for l.pos < len(l.input) {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return l.token(TokenTextBlock, start)
}

// operators is ordered longest first within each leading byte. A lone '>'
// is always its own token: the parser fuses adjacent '>' into shift
// operators so that nested type arguments close naturally.
var operators = []struct {
	text string
	kind TokenKind
}{
	{">>>=", TokenUShrAssign},
	{"<<=", TokenShlAssign},
	{">>=", TokenShrAssign},
	{"...", TokenEllipsis},
	{"::", TokenColonColon},
	{"->", TokenArrow},
	{"==", TokenEQ},
	{"!=", TokenNE},
	{"<=", TokenLE},
	{">=", TokenGE},
	{"&&", TokenAnd},
	{"||", TokenOr},
	{"<<", TokenShl},
	{"++", TokenIncrement},
	{"--", TokenDecrement},
	{"+=", TokenPlusAssign},
	{"-=", TokenMinusAssign},
	{"*=", TokenStarAssign},
	{"/=", TokenSlashAssign},
	{"%=", TokenPercentAssign},
	{"&=", TokenAndAssign},
	{"|=", TokenOrAssign},
	{"^=", TokenXorAssign},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{";", TokenSemicolon},
	{",", TokenComma},
	{".", TokenDot},
	{"@", TokenAt},
	{"=", TokenAssign},
	{"<", TokenLT},
	{">", TokenGT},
	{"!", TokenNot},
	{"~", TokenBitNot},
	{"?", TokenQuestion},
	{":", TokenColon},
	{"&", TokenBitAnd},
	{"|", TokenBitOr},
	{"^", TokenBitXor},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
}

func (l *Lexer) scanOperator(start Position) Token {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op.text)) {
			l.advanceN(len(op.text))
			return l.token(op.kind, start)
		}
	}
	l.advanceRune()
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isJavaLetter(ch byte) bool {
	if ch >= utf8.RuneSelf {
		return true
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isJavaStart(rest []byte) bool {
	if rest[0] >= utf8.RuneSelf {
		r, _ := utf8.DecodeRune(rest)
		return unicode.IsLetter(r)
	}
	return isJavaLetter(rest[0])
}

func isJavaLetterOrDigit(rest []byte) bool {
	ch := rest[0]
	if ch >= utf8.RuneSelf {
		r, _ := utf8.DecodeRune(rest)
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return isJavaLetter(ch) || isDigit(ch)
}
