// Package parser implements the recursive-descent grammar driver for
// the structural Verilog subset (spec §4.3). Each reduced production
// synthesizes a record and pushes it through the ast.Emitter in source
// order; on a syntax error the parser records a diagnostic and
// synchronizes to the next ';' or 'endmodule' instead of aborting.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RazKarapetyan/Parser-Verilog/ast"
	"github.com/RazKarapetyan/Parser-Verilog/config"
	"github.com/RazKarapetyan/Parser-Verilog/diag"
	"github.com/RazKarapetyan/Parser-Verilog/intern"
	"github.com/RazKarapetyan/Parser-Verilog/lexer"
	"github.com/RazKarapetyan/Parser-Verilog/token"
)

// Parser recognizes source module-by-module, pulling tokens on demand
// from a lexer.Lexer and pushing records through an ast.Emitter.
type Parser struct {
	lex     *lexer.Lexer
	tok     token.Token
	em      ast.Emitter
	diags   *diag.Bag
	opts    config.Options
	srcName string
}

// New creates a Parser reading from lex and emitting into em. diags
// collects lexical and syntax errors and semantic warnings; the
// caller owns it and may inspect it after Parse returns.
func New(lex *lexer.Lexer, em ast.Emitter, diags *diag.Bag, opts config.Options, srcName string) *Parser {
	p := &Parser{lex: lex, em: em, diags: diags, opts: opts, srcName: srcName}
	p.advance()
	return p
}

// Parse consumes the entire token stream, parsing zero or more
// top-level modules. Returns true if parsing completed without any
// error-severity diagnostic (warnings do not count).
func (p *Parser) Parse() bool {
	before := p.diags.Count()
	for !p.tok.Is(token.EOF) {
		if p.tok.Is(token.KwModule) {
			p.parseModule()
		} else {
			p.errorf("unexpected %s, expected 'module'", p.tok.Kind)
			p.synchronize()
		}
	}
	for _, d := range p.diags.Items()[before:] {
		if d.Severity == diag.SevError {
			return false
		}
	}
	return true
}

// advance skips any LexError tokens (recording a diagnostic for each;
// the scanner has already recovered to the next boundary) and loads
// the next real token into p.tok.
func (p *Parser) advance() {
	for {
		t := p.lex.Next()
		if t.Kind == token.LexError {
			p.addDiag(diag.LexError, diag.SevError, t.Line(), t.Col(), "unrecognized input %q", t.Text)
			continue
		}
		p.tok = t
		return
	}
}

func (p *Parser) addDiag(class diag.Class, sev diag.Severity, line, col int, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	p.diags.Add(diag.Diagnostic{
		Class:    class,
		Severity: sev,
		Message:  msg,
		Source:   p.srcName,
		Line:     line,
		Col:      col,
	})
}

func (p *Parser) errorf(format string, args ...any) {
	p.addDiag(diag.ParseError, diag.SevError, p.tok.Line(), p.tok.Col(), format, args...)
}

// expect verifies the current token's kind, advances past it, and
// returns its text. On mismatch it records a diagnostic and returns
// false without advancing, so the caller's own recovery (usually
// synchronize) takes over.
func (p *Parser) expect(k token.Kind) (string, bool) {
	if p.tok.Kind != k {
		p.errorf("unexpected %s, expected %s", p.tok.Kind, k)
		return "", false
	}
	text := p.tok.Text
	p.advance()
	return text, true
}

// synchronize discards tokens until the next ';' (consumed) or
// 'endmodule'/EOF (left for the caller to see), per spec §4.3/§7.
func (p *Parser) synchronize() {
	for {
		switch p.tok.Kind {
		case token.Semi:
			p.advance()
			return
		case token.KwEndmodule, token.EOF:
			return
		default:
			p.advance()
		}
	}
}

func isDirection(k token.Kind) bool {
	return k == token.KwInput || k == token.KwOutput || k == token.KwInout
}

// isIdentKind reports whether k is a plain or escaped identifier;
// wherever the grammar accepts one it accepts the other (spec §4.2:
// an escaped identifier is just an identifier interned without its
// leading backslash).
func isIdentKind(k token.Kind) bool {
	return k == token.Ident || k == token.EscapedIdent
}

// expectIdent accepts a plain or escaped identifier, advances past it,
// and returns its text. Escaped identifiers arrive from the lexer with
// the leading backslash and trailing whitespace already stripped.
func (p *Parser) expectIdent() (string, bool) {
	if !isIdentKind(p.tok.Kind) {
		p.errorf("unexpected %s, expected %s", p.tok.Kind, token.Ident)
		return "", false
	}
	text := p.tok.Text
	p.advance()
	return text, true
}

func isNetType(k token.Kind) bool {
	switch k {
	case token.KwWire, token.KwReg, token.KwWand, token.KwWor, token.KwTri,
		token.KwTriand, token.KwTrior, token.KwSupply0, token.KwSupply1:
		return true
	}
	return false
}

// pendingPort tracks a non-ANSI header name awaiting a body
// declaration; see parseModule and DESIGN.md's Open Question decision.
type pendingPort struct {
	id       intern.ID
	line     int
	col      int
	declared bool
}

func (p *Parser) parseModule() {
	p.advance() // 'module'

	nameText, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return
	}
	moduleName := p.em.Intern().IDOf(nameText)
	p.em.AddModule(moduleName)

	pending, pendingOrder := p.parsePortHeaderIfPresent()

	if _, ok := p.expect(token.Semi); !ok {
		p.synchronize()
	}

	for !p.tok.Is(token.KwEndmodule) && !p.tok.Is(token.EOF) {
		p.parseItem(pending)
	}

	for _, id := range pendingOrder {
		pp := pending[id]
		if pp.declared {
			continue
		}
		p.em.AddPort(ast.Port{Names: []intern.ID{id}, Range: ast.Range{Beg: -1, End: -1}, Dir: ast.Input})
		p.addDiag(diag.SemanticWarning, diag.SevWarning, pp.line, pp.col,
			"port %q listed in header but never declared in module body", p.em.Intern().View(id))
	}

	if p.tok.Is(token.KwEndmodule) {
		p.advance()
	} else {
		p.errorf("missing 'endmodule'")
	}
}

// parsePortHeaderIfPresent parses an optional `( port_list? )`.
// ANSI-style headers (first token after '(' is a direction keyword)
// emit Port records immediately. Non-ANSI headers (bare identifiers)
// return a pending map of names awaiting a body declaration; see
// DESIGN.md's Open Question decision on override policy.
func (p *Parser) parsePortHeaderIfPresent() (map[intern.ID]*pendingPort, []intern.ID) {
	if !p.tok.Is(token.LParen) {
		return nil, nil
	}
	p.advance()

	if p.tok.Is(token.RParen) {
		p.advance()
		return nil, nil
	}

	if isDirection(p.tok.Kind) {
		for {
			_, consumed := p.parsePortDecl(true)
			if consumed {
				continue
			}
			if p.tok.Is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, ok := p.expect(token.RParen); !ok {
			p.synchronize()
		}
		return nil, nil
	}

	pending := make(map[intern.ID]*pendingPort)
	var order []intern.ID
	for {
		nameLine, nameCol := p.tok.Line(), p.tok.Col()
		nameText, ok := p.expectIdent()
		if !ok {
			break
		}
		id := p.em.Intern().IDOf(nameText)
		pending[id] = &pendingPort{id: id, line: nameLine, col: nameCol}
		order = append(order, id)
		if p.tok.Is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen); !ok {
		p.synchronize()
	}

	// Under HeaderWins, the header's inferred INPUT/unranged/no-kind
	// record is authoritative the moment the header is seen; a later
	// body declaration only produces a warning (see parseBodyPortDecl)
	// and never re-emits, per DESIGN.md's Open Question decision. Under
	// BodyOverridesHeader (the default), nothing is emitted here — the
	// body declaration is the only source of truth, and the trailing
	// loop in parseModule covers names the body never reaches.
	if p.opts.PortOverride == config.HeaderWins {
		for _, id := range order {
			p.em.AddPort(ast.Port{Names: []intern.ID{id}, Range: ast.Range{Beg: -1, End: -1}, Dir: ast.Input})
			pending[id].declared = true
		}
	}

	return pending, order
}

func (p *Parser) parseItem(pending map[intern.ID]*pendingPort) {
	switch {
	case isDirection(p.tok.Kind):
		p.parseBodyPortDecl(pending)
		if _, ok := p.expect(token.Semi); !ok {
			p.synchronize()
		}
	case isNetType(p.tok.Kind):
		p.parseNetDecl()
		if _, ok := p.expect(token.Semi); !ok {
			p.synchronize()
		}
	case p.tok.Is(token.KwAssign):
		p.parseAssign()
		if _, ok := p.expect(token.Semi); !ok {
			p.synchronize()
		}
	case isIdentKind(p.tok.Kind):
		p.parseInstance()
		if _, ok := p.expect(token.Semi); !ok {
			p.synchronize()
		}
	default:
		p.errorf("unexpected %s at start of module item", p.tok.Kind)
		p.synchronize()
	}
}

// parseBodyPortDecl parses a body-context port_decl. Under
// HeaderWins, a name already declared by the header (its record was
// emitted in parsePortHeaderIfPresent) is not re-emitted; the body's
// shape is discarded and a warning records the ignored redeclaration.
// Under BodyOverridesHeader (the default), the body declaration is
// always the one that gets emitted, and marks the pending header name
// as accounted for so parseModule's trailing loop skips it.
func (p *Parser) parseBodyPortDecl(pending map[intern.ID]*pendingPort) {
	port, _ := p.parsePortDeclShape(false)

	if p.opts.PortOverride == config.HeaderWins {
		var kept []intern.ID
		for _, id := range port.Names {
			if pp, ok := pending[id]; ok && pp.declared {
				p.addDiag(diag.SemanticWarning, diag.SevWarning, pp.line, pp.col,
					"port %q redeclared in module body is ignored under the header-wins policy", p.em.Intern().View(id))
				continue
			}
			kept = append(kept, id)
		}
		if kept == nil {
			return
		}
		port.Names = kept
	}

	p.em.AddPort(port)
	for _, id := range port.Names {
		if pp, ok := pending[id]; ok {
			pp.declared = true
		}
	}
}

// parsePortDecl parses `direction net_kind? range? ident (',' ident)*`
// and emits the resulting Port immediately; used for ANSI header
// port_decls, where there is no pending-header reconciliation to do.
func (p *Parser) parsePortDecl(inHeader bool) ([]intern.ID, bool) {
	port, commaConsumed := p.parsePortDeclShape(inHeader)
	p.em.AddPort(port)
	return port.Names, commaConsumed
}

// parsePortDeclShape parses `direction net_kind? range? ident (','
// ident)*` into a Port without emitting it, so callers can inspect or
// filter its Names first (see parseBodyPortDecl). When inHeader, a
// comma immediately followed by a direction keyword belongs to the
// next port_decl in the port_list rather than this one's identifier
// list; parsePortDeclShape consumes that comma (to disambiguate via
// one-token lookahead) and reports so via the second return value so
// the caller does not consume it again.
func (p *Parser) parsePortDeclShape(inHeader bool) (ast.Port, bool) {
	var dir ast.PortDirection
	switch p.tok.Kind {
	case token.KwOutput:
		dir = ast.Output
	case token.KwInout:
		dir = ast.Inout
	default:
		dir = ast.Input
	}
	p.advance()

	kind := ast.NoConnection
	switch p.tok.Kind {
	case token.KwWire:
		kind = ast.WireConnection
		p.advance()
	case token.KwReg:
		kind = ast.RegConnection
		p.advance()
	}

	rng := ast.Range{Beg: -1, End: -1}
	if p.tok.Is(token.LBracket) {
		rng = p.parseRange()
	}

	var names []intern.ID
	commaConsumed := false
	for {
		nameText, ok := p.expectIdent()
		if !ok {
			break
		}
		names = append(names, p.em.Intern().IDOf(nameText))
		if !p.tok.Is(token.Comma) {
			break
		}
		if inHeader {
			p.advance()
			if isDirection(p.tok.Kind) {
				commaConsumed = true
				break
			}
			continue
		}
		p.advance()
	}

	return ast.Port{Names: names, Range: rng, Dir: dir, Type: kind}, commaConsumed
}

func (p *Parser) parseNetDecl() {
	var nt ast.NetType
	switch p.tok.Kind {
	case token.KwReg:
		nt = ast.RegNet
	case token.KwWand:
		nt = ast.WandNet
	case token.KwWor:
		nt = ast.WorNet
	case token.KwTri:
		nt = ast.TriNet
	case token.KwTriand:
		nt = ast.TriandNet
	case token.KwTrior:
		nt = ast.TriorNet
	case token.KwSupply0:
		nt = ast.Supply0Net
	case token.KwSupply1:
		nt = ast.Supply1Net
	default:
		nt = ast.WireNet
	}
	p.advance()

	rng := ast.Range{Beg: -1, End: -1}
	if p.tok.Is(token.LBracket) {
		rng = p.parseRange()
	}

	var names []intern.ID
	for {
		nameText, ok := p.expectIdent()
		if !ok {
			break
		}
		names = append(names, p.em.Intern().IDOf(nameText))
		if p.tok.Is(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	p.em.AddNet(ast.Net{Names: names, Range: rng, Type: nt})
}

func (p *Parser) parseAssign() {
	p.advance() // 'assign'
	lhs := p.parseLvalueConcat()
	if _, ok := p.expect(token.Equals); !ok {
		return
	}
	rhs := p.parseExprConcat()
	p.em.AddAssignment(ast.Assignment{LHS: lhs, RHS: rhs})
}

func (p *Parser) parseLvalueConcat() []ast.NetRef {
	if p.tok.Is(token.LBrace) {
		p.advance()
		var refs []ast.NetRef
		for {
			refs = append(refs, p.parseNetRef())
			if p.tok.Is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, ok := p.expect(token.RBrace); !ok {
			p.synchronize()
		}
		return refs
	}
	return []ast.NetRef{p.parseNetRef()}
}

func (p *Parser) parseExprConcat() []ast.NetRef {
	if p.tok.Is(token.LBrace) {
		p.advance()
		var refs []ast.NetRef
		for {
			refs = append(refs, p.parseExpr())
			if p.tok.Is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, ok := p.expect(token.RBrace); !ok {
			p.synchronize()
		}
		return refs
	}
	return []ast.NetRef{p.parseExpr()}
}

// parseNetRef parses `ident ( '[' int (':' int)? ']' )?`, used
// wherever a Const is never allowed (LHS, pin names).
func (p *Parser) parseNetRef() ast.NetRef {
	nameText, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return ast.WholeRef{}
	}
	id := p.em.Intern().IDOf(nameText)
	return p.parseRefSuffix(id)
}

func (p *Parser) parseRefSuffix(id intern.ID) ast.NetRef {
	if !p.tok.Is(token.LBracket) {
		return ast.WholeRef{Name: id}
	}
	p.advance()
	beg := p.parseInt()
	if p.tok.Is(token.Colon) {
		p.advance()
		end := p.parseInt()
		if _, ok := p.expect(token.RBracket); !ok {
			p.synchronize()
		}
		return ast.RangeRef{Name: id, Beg: beg, End: end}
	}
	if _, ok := p.expect(token.RBracket); !ok {
		p.synchronize()
	}
	return ast.BitRef{Name: id, Bit: beg}
}

// parseExpr parses `netref | constant`.
func (p *Parser) parseExpr() ast.NetRef {
	if isIdentKind(p.tok.Kind) {
		return p.parseNetRef()
	}
	if isNumberKind(p.tok.Kind) {
		c := constantFromToken(p.tok)
		p.advance()
		return ast.ConstRef{Value: c}
	}
	p.errorf("unexpected %s, expected a net reference or constant", p.tok.Kind)
	p.synchronize()
	return ast.ConstRef{Value: ast.Constant{}}
}

func isNumberKind(k token.Kind) bool {
	switch k {
	case token.IntNumber, token.BasedNumber, token.RealNumber, token.ExpNumber:
		return true
	}
	return false
}

// parseRange parses a declaration-context `'[' int (':' int)? ']'`. A
// bare `[k]` (no colon) normalizes to beg = end = k, same as a
// single-bit netref subscript (spec §4.3's range normalization rule).
func (p *Parser) parseRange() ast.Range {
	p.advance() // '['
	beg := p.parseInt()
	if !p.tok.Is(token.Colon) {
		if _, ok := p.expect(token.RBracket); !ok {
			p.synchronize()
		}
		return ast.Range{Beg: beg, End: beg}
	}
	p.advance() // ':'
	end := p.parseInt()
	if _, ok := p.expect(token.RBracket); !ok {
		p.synchronize()
	}
	return ast.Range{Beg: beg, End: end}
}

func (p *Parser) parseInt() int {
	if !p.tok.Is(token.IntNumber) {
		p.errorf("unexpected %s, expected an integer", p.tok.Kind)
		return 0
	}
	text := strings.ReplaceAll(p.tok.Text, "_", "")
	n, err := strconv.Atoi(text)
	p.advance()
	if err != nil {
		return 0
	}
	return n
}

// constantFromToken builds an ast.Constant from a number token,
// preserving its exact source text and classifying its base family.
func constantFromToken(t token.Token) ast.Constant {
	switch t.Kind {
	case token.IntNumber:
		return ast.Constant{Value: t.Text, Type: ast.Integer}
	case token.RealNumber:
		return ast.Constant{Value: t.Text, Type: ast.Real}
	case token.ExpNumber:
		return ast.Constant{Value: t.Text, Type: ast.Exp}
	case token.BasedNumber:
		return ast.Constant{Value: t.Text, Type: basedConstantType(t.Text)}
	}
	return ast.Constant{Value: t.Text}
}

func basedConstantType(text string) ast.ConstantType {
	i := strings.IndexByte(text, '\'')
	if i < 0 || i+1 >= len(text) {
		return ast.NoConstant
	}
	j := i + 1
	if j < len(text) && (text[j] == 's' || text[j] == 'S') {
		j++
	}
	if j >= len(text) {
		return ast.NoConstant
	}
	switch text[j] {
	case 'b', 'B':
		return ast.Binary
	case 'o', 'O':
		return ast.Octal
	case 'd', 'D':
		return ast.Decimal
	case 'h', 'H':
		return ast.Hex
	}
	return ast.NoConstant
}

// parseInstance parses `ident ident '(' conn_list? ')'`.
func (p *Parser) parseInstance() {
	moduleText, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return
	}
	instText, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return
	}
	if _, ok := p.expect(token.LParen); !ok {
		p.synchronize()
		return
	}

	inst := ast.Instance{
		ModuleName: p.em.Intern().IDOf(moduleText),
		InstName:   p.em.Intern().IDOf(instText),
	}

	if p.tok.Is(token.RParen) {
		p.advance()
		p.em.AddInstance(inst)
		return
	}

	if p.tok.Is(token.Dot) {
		for {
			p.advance() // '.'
			pin := p.parseNetRef()
			if _, ok := p.expect(token.LParen); !ok {
				p.synchronize()
				break
			}
			var conn []ast.NetRef
			if !p.tok.Is(token.RParen) {
				conn = p.parseExprConcat()
			}
			if _, ok := p.expect(token.RParen); !ok {
				p.synchronize()
				break
			}
			inst.PinNames = append(inst.PinNames, pin)
			inst.NetNames = append(inst.NetNames, conn)
			if p.tok.Is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	} else {
		for {
			inst.NetNames = append(inst.NetNames, p.parseExprConcat())
			if p.tok.Is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	if _, ok := p.expect(token.RParen); !ok {
		p.synchronize()
		return
	}
	p.em.AddInstance(inst)
}
