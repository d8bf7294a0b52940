package picol

import "testing"

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	lx := newLexer(input)
	var toks []Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Type == tokenEOF {
			return toks
		}
		if len(toks) > 1000 {
			t.Fatalf("lexer did not terminate on %q", input)
		}
	}
}

func expectTokens(t *testing.T, input string, want []Token) {
	t.Helper()
	got := collectTokens(t, input)
	if len(got) != len(want) {
		t.Fatalf("input %q: got %d tokens %v, want %d", input, len(got), got, len(want))
	}
	for idx, tok := range got {
		if tok.Type != want[idx].Type || tok.Text != want[idx].Text {
			t.Fatalf("input %q token %d: got {%s %q}, want {%s %q}",
				input, idx, tok.Type, tok.Text, want[idx].Type, want[idx].Text)
		}
	}
}

func TestLexSimpleCommand(t *testing.T) {
	expectTokens(t, "set x 5", []Token{
		{tokenText, "set"},
		{tokenSeparator, " "},
		{tokenText, "x"},
		{tokenSeparator, " "},
		{tokenText, "5"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexQuotedStringKeepsSpaces(t *testing.T) {
	expectTokens(t, `puts "hello world"`, []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenText, "hello world"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexBraceLiteralNoSubstitution(t *testing.T) {
	expectTokens(t, `{a {b} $c}`, []Token{
		{tokenLiteral, "a {b} $c"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexCommandSubstitutionSpan(t *testing.T) {
	expectTokens(t, "[+ 1 2]x", []Token{
		{tokenCommand, "+ 1 2"},
		{tokenText, "x"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexNestedBrackets(t *testing.T) {
	expectTokens(t, "[+ [+ 1 2] 3]", []Token{
		{tokenCommand, "+ [+ 1 2] 3"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexVariable(t *testing.T) {
	expectTokens(t, "puts $name_1", []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenVariable, "name_1"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexBareDollarIsLiteral(t *testing.T) {
	expectTokens(t, "puts $ ", []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenLiteral, "$"},
		{tokenSeparator, " "},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexWordInterpolationBoundary(t *testing.T) {
	// $ starts a new token mid-word; the evaluator glues them back together.
	expectTokens(t, "bar$a", []Token{
		{tokenText, "bar"},
		{tokenVariable, "a"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexCommentAtCommandStart(t *testing.T) {
	expectTokens(t, "# a comment\nputs hi", []Token{
		{tokenEndOfLine, "\n"},
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenText, "hi"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexHashInsideCommandIsText(t *testing.T) {
	expectTokens(t, "puts #5", []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenText, "#5"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexSemicolonTerminates(t *testing.T) {
	expectTokens(t, "break;continue", []Token{
		{tokenText, "break"},
		{tokenEndOfLine, ";"},
		{tokenText, "continue"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexEscapeKeptInSpan(t *testing.T) {
	expectTokens(t, `puts a\ b`, []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenText, `a\ b`},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexEmptyInput(t *testing.T) {
	expectTokens(t, "", []Token{
		{tokenEOF, ""},
	})
}

func TestLexWhitespaceOnly(t *testing.T) {
	expectTokens(t, "  \t ", []Token{
		{tokenSeparator, "  \t "},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexScriptEndingInNewlineEmitsSingleTerminator(t *testing.T) {
	expectTokens(t, "break\n", []Token{
		{tokenText, "break"},
		{tokenEndOfLine, "\n"},
		{tokenEOF, ""},
	})
}

func TestLexUnterminatedQuoteRunsToEnd(t *testing.T) {
	expectTokens(t, `puts "a b`, []Token{
		{tokenText, "puts"},
		{tokenSeparator, " "},
		{tokenText, "a b"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}

func TestLexAdjacentBraceLiteralsStartNewWords(t *testing.T) {
	expectTokens(t, "{a}{b}", []Token{
		{tokenLiteral, "a"},
		{tokenLiteral, "b"},
		{tokenEndOfLine, ""},
		{tokenEOF, ""},
	})
}
