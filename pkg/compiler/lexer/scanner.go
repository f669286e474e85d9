package lexer

// Scanner performs lexical analysis on pseudocode source.
type Scanner struct {
	source string
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes source in a single left-to-right pass. It never
// fails: unrecognized characters come back as symbol tokens and the
// caller decides what to do with them.
func Scan(source string) []Token {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Next returns the next token. The second result is false once the
// source is exhausted.
func (s *Scanner) Next() (Token, bool) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{}, false
	}

	ch := s.source[s.cursor]

	// Line comments (// ...). The skip counts as ending a line even
	// though the newline itself is left for skipWhitespace, so line
	// numbers drift by one per comment. Kept for compatibility with
	// the reference translator.
	if ch == '/' && s.peek() == '/' {
		s.skipComment()
		return s.Next()
	}

	if isAlpha(ch) {
		return s.scanWord(), true
	}

	if isDigit(ch) {
		return s.scanNumber(), true
	}

	if ch == '"' {
		return s.scanString(), true
	}

	return s.scanOperator(), true
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r':
			s.cursor++
		case '\n':
			s.line++
			s.cursor++
		default:
			return
		}
	}
}

func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
	s.line++
}

// scanWord reads a letter followed by letters/digits/underscore and
// classifies it against the reserved-word table.
func (s *Scanner) scanWord() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isWordChar(s.source[s.cursor]) {
		s.cursor++
	}

	text := s.source[start:s.cursor]
	kind := KindIdentifier
	if _, ok := reservedWords[text]; ok {
		kind = KindReserved
	}

	return Token{Kind: kind, Text: text, Line: s.line}
}

// scanNumber reads a maximal digit run. No sign, decimal point or
// exponent: a leading minus is a separate operator token.
func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return Token{Kind: KindNumber, Text: s.source[start:s.cursor], Line: s.line}
}

// scanString reads a double-quoted literal and stores the payload
// without the quotes. An unterminated string consumes to end of input
// without a diagnostic.
func (s *Scanner) scanString() Token {
	s.cursor++ // opening '"'
	start := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		if s.source[s.cursor] == '\n' {
			s.line++
		}
		s.cursor++
	}

	tok := Token{Kind: KindString, Text: s.source[start:s.cursor], Line: s.line}
	if s.cursor < len(s.source) {
		s.cursor++ // closing '"'
	}
	return tok
}

// scanOperator classifies punctuation: two-character operators first,
// then single-character operators, then symbol for anything else.
func (s *Scanner) scanOperator() Token {
	if s.cursor+1 < len(s.source) {
		two := s.source[s.cursor : s.cursor+2]
		switch two {
		case "<=", ">=", "==", "!=", "<-":
			s.cursor += 2
			return Token{Kind: KindOperator, Text: two, Line: s.line}
		}
	}

	ch := s.source[s.cursor]
	s.cursor++

	kind := KindSymbol
	switch ch {
	case '+', '-', '*', '/', '=', '<', '>', '(', ')', ',':
		kind = KindOperator
	}

	return Token{Kind: kind, Text: string(ch), Line: s.line}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWordChar(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}
