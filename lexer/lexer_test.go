package lexer

import (
	"testing"

	"github.com/RazKarapetyan/Parser-Verilog/source"
	"github.com/RazKarapetyan/Parser-Verilog/token"
)

func scanAll(t *testing.T, text string) []token.Token {
	t.Helper()
	l := New(source.New("t.v", []byte(text)))
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestKeywordsAndPunctuation(t *testing.T) {
	toks := scanAll(t, "module m(a,b); endmodule")
	want := []token.Kind{
		token.KwModule, token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.RParen, token.Semi, token.KwEndmodule, token.EOF,
	}
	assertKinds(t, toks, want)
}

func TestComments(t *testing.T) {
	toks := scanAll(t, "wire // trailing comment\n a; /* block\ncomment */ wire b;")
	want := []token.Kind{
		token.KwWire, token.Ident, token.Semi, token.KwWire, token.Ident, token.Semi, token.EOF,
	}
	assertKinds(t, toks, want)
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := scanAll(t, "wire a; /* never closed")
	if toks[len(toks)-2].Kind != token.LexError {
		t.Fatalf("expected trailing LexError, got %v", kinds(toks))
	}
}

func TestEscapedIdentifier(t *testing.T) {
	toks := scanAll(t, `wire \a-weird-name ;`)
	if toks[1].Kind != token.EscapedIdent || toks[1].Text != "a-weird-name" {
		t.Fatalf("expected escaped ident %q, got kind %v text %q", "a-weird-name", toks[1].Kind, toks[1].Text)
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.IntNumber},
		{"4'b1010", token.BasedNumber},
		{"8'hFF", token.BasedNumber},
		{"'o17", token.BasedNumber},
		{"1.5", token.RealNumber},
		{"1e3", token.ExpNumber},
		{"2.5e-2", token.ExpNumber},
	}
	for _, c := range cases {
		toks := scanAll(t, c.src)
		if len(toks) != 2 || toks[0].Kind != c.kind || toks[0].Text != c.src {
			t.Errorf("%q: expected single %v token with full text, got %+v", c.src, c.kind, toks)
		}
	}
}

func TestUnderscoresInDigitRun(t *testing.T) {
	toks := scanAll(t, "16'hDEAD_BEEF")
	if toks[0].Kind != token.BasedNumber || toks[0].Text != "16'hDEAD_BEEF" {
		t.Fatalf("expected based literal with underscores preserved, got %+v", toks[0])
	}
}

func TestWrongChar(t *testing.T) {
	toks := scanAll(t, "wire a; @ wire b;")
	if !containsKind(toks, token.LexError) {
		t.Fatalf("expected a LexError token, got %v", kinds(toks))
	}
}

func containsKind(toks []token.Token, k token.Kind) bool {
	for _, t := range toks {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func assertKinds(t *testing.T, toks []token.Token, want []token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v (all: %v)", i, want[i], got[i], got)
		}
	}
}
