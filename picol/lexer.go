package picol

// lexer walks a script one token at a time. It keeps no lookahead and never
// allocates token text beyond slicing the input: substitution and escape
// interpretation happen later, in the evaluator.
type lexer struct {
	input string
	pos   int

	// insideQuotes survives across tokens so a double-quoted word can span
	// separators and substitutions: `"a $b c"` stays one word.
	insideQuotes bool

	// prev is the type of the last token handed out. It decides whether a
	// `#` starts a comment (only at command start) and whether `{` or `"`
	// open a new quoted word.
	prev TokenType
}

func newLexer(input string) *lexer {
	return &lexer{input: input, prev: tokenEndOfLine}
}

// NextToken returns the next token. After the final command it yields one
// END_OF_CMD (if the script did not end on one) and then EOF forever.
func (l *lexer) NextToken() Token {
	for {
		if l.pos >= len(l.input) {
			if l.prev != tokenEndOfLine && l.prev != tokenEOF {
				l.prev = tokenEndOfLine
				return Token{Type: tokenEndOfLine}
			}
			l.prev = tokenEOF
			return Token{Type: tokenEOF}
		}

		switch c := l.input[l.pos]; c {
		case ' ', '\t', '\r':
			if l.insideQuotes {
				return l.scanWord()
			}
			return l.scanSeparator()
		case '\n', ';':
			if l.insideQuotes {
				return l.scanWord()
			}
			return l.scanTerminator()
		case '[':
			return l.scanCommand()
		case '$':
			return l.scanVariable()
		case '#':
			if l.prev == tokenEndOfLine {
				l.skipComment()
				continue
			}
			return l.scanWord()
		default:
			return l.scanWord()
		}
	}
}

// scanSeparator consumes a run of whitespace between words. Newlines inside
// the run are swallowed too, so a command whose last word is followed by a
// space continues onto the next line; this matches how Tcl-style separators
// behave and is relied on by existing scripts.
func (l *lexer) scanSeparator() Token {
	start := l.pos
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	l.prev = tokenSeparator
	return Token{Type: tokenSeparator, Text: l.input[start:l.pos]}
}

// scanTerminator consumes a run of newlines, semicolons and whitespace that
// ends the current command.
func (l *lexer) scanTerminator() Token {
	start := l.pos
	for l.pos < len(l.input) {
		if c := l.input[l.pos]; isSpace(c) || c == ';' {
			l.pos++
			continue
		}
		break
	}
	l.prev = tokenEndOfLine
	return Token{Type: tokenEndOfLine, Text: l.input[start:l.pos]}
}

// scanCommand consumes a bracketed script for command substitution. Brackets
// nest; brace depth is tracked independently so brackets inside braces do not
// need to balance; a backslash protects the next character from ending the
// scan. The matching close bracket is consumed but excluded from the token.
func (l *lexer) scanCommand() Token {
	l.pos++ // opening [
	start := l.pos
	depth := 1
	braceDepth := 0
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case c == '\\' && l.pos+1 < len(l.input):
			l.pos++
		case c == '[' && braceDepth == 0:
			depth++
		case c == ']' && braceDepth == 0:
			depth--
			if depth == 0 {
				text := l.input[start:l.pos]
				l.pos++ // closing ]
				l.prev = tokenCommand
				return Token{Type: tokenCommand, Text: text}
			}
		case c == '{':
			braceDepth++
		case c == '}':
			braceDepth--
		}
		l.pos++
	}
	// Unbalanced bracket: the rest of the input is the nested script.
	l.prev = tokenCommand
	return Token{Type: tokenCommand, Text: l.input[start:]}
}

// scanVariable consumes $name where name is a maximal run of word
// characters. A bare `$` with no name degrades to literal text.
func (l *lexer) scanVariable() Token {
	l.pos++ // $
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		l.prev = tokenLiteral
		return Token{Type: tokenLiteral, Text: "$"}
	}
	l.prev = tokenVariable
	return Token{Type: tokenVariable, Text: l.input[start:l.pos]}
}

// scanWord consumes plain word text. At a fresh word position a leading `{`
// opens a brace-quoted literal and a leading `"` enters quote mode; otherwise
// text runs until a substitution starts, an unquoted separator or terminator
// appears, or a closing quote ends quote mode. Backslash keeps the following
// character in the raw span without interpreting it.
func (l *lexer) scanWord() Token {
	if l.prev == tokenEndOfLine || l.prev == tokenSeparator || l.prev == tokenLiteral {
		switch l.input[l.pos] {
		case '{':
			return l.scanBrace()
		case '"':
			l.insideQuotes = true
			l.pos++
		}
	}

	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '\\' {
			if l.pos+1 < len(l.input) {
				l.pos++ // keep the escaped character in the span
			}
		} else if c == '$' || c == '[' {
			l.prev = tokenText
			return Token{Type: tokenText, Text: l.input[start:l.pos]}
		} else if (isSpace(c) || c == ';') && !l.insideQuotes {
			l.prev = tokenText
			return Token{Type: tokenText, Text: l.input[start:l.pos]}
		} else if c == '"' && l.insideQuotes {
			text := l.input[start:l.pos]
			l.pos++ // closing quote
			l.insideQuotes = false
			l.prev = tokenText
			return Token{Type: tokenText, Text: text}
		}
		l.pos++
	}
	l.prev = tokenText
	return Token{Type: tokenText, Text: l.input[start:]}
}

// scanBrace consumes a brace-quoted literal. Braces nest, backslash protects
// the next character, and no substitution markers end the scan. The outer
// braces are excluded from the token.
func (l *lexer) scanBrace() Token {
	l.pos++ // opening {
	start := l.pos
	depth := 1
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case c == '\\' && l.pos+1 < len(l.input):
			l.pos++
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				text := l.input[start:l.pos]
				l.pos++ // closing }
				l.prev = tokenLiteral
				return Token{Type: tokenLiteral, Text: text}
			}
		}
		l.pos++
	}
	// Unterminated literal: the rest of the input belongs to it.
	l.prev = tokenLiteral
	return Token{Type: tokenLiteral, Text: l.input[start:]}
}

func (l *lexer) skipComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
