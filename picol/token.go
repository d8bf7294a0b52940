package picol

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenText      TokenType = "TEXT"       // plain or escaped word text
	tokenLiteral   TokenType = "LITERAL"    // brace-quoted literal (or bare $)
	tokenCommand   TokenType = "COMMAND"    // [ ... ] command substitution
	tokenVariable  TokenType = "VARIABLE"   // $name variable substitution
	tokenSeparator TokenType = "SEPARATOR"  // run of spaces/tabs between words
	tokenEndOfLine TokenType = "END_OF_CMD" // newline or ; terminating a command
	tokenEOF       TokenType = "EOF"
)

// Token carries a lexical category and the raw span of source it covers.
// Substitution tokens hold the inner text only: a COMMAND token's Text
// excludes the surrounding brackets, a VARIABLE token's Text is the bare name.
type Token struct {
	Type TokenType
	Text string
}
