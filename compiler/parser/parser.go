// Package parser implements the recursive-descent SpRE parser: tokens in,
// an ir.AST out, covering the four nested sub-grammars (SpRE, S4u, S4m, S4).
package parser

import (
	"strconv"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/compiler/lexer"
	"github.com/cps-atlas/strem/internal/errs"
)

// Error is a fatal parse failure: a message plus the process exit code the
// command-line driver should use (1 for an expected-vs-found mismatch, 2 for
// an unrecognized production).
type Error struct {
	err  error
	Code int
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// bail is used internally to unwind the recursive descent the instant a
// fatal error is discovered, mirroring the reference parser's immediate-exit
// error listener without threading an error return through every call.
type bail struct{ err *Error }

// Parser turns a token stream into an ir.AST.
type Parser struct {
	stream *lexer.Stream
}

// New builds a Parser over src.
func New(src string) *Parser {
	return &Parser{stream: lexer.NewStream(src)}
}

// Parse parses the entire source as a single SpRE pattern.
func Parse(src string) (ast *ir.AST, err error) {
	p := New(src)

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bail)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()

	tok, lexErr := p.stream.Peek()
	if lexErr != nil {
		return nil, lexErr
	}

	var root *ir.Node
	if tok.Kind != lexer.EndOfFile {
		root = p.parseSpre()
	}
	p.expect(lexer.EndOfFile)

	return &ir.AST{Root: root}, nil
}

func (p *Parser) peek() lexer.Token {
	tok, err := p.stream.Peek()
	if err != nil {
		panic(bail{&Error{err: err, Code: 2}})
	}
	return tok
}

// expect consumes the next token, fatally failing if it is not of kind.
func (p *Parser) expect(kind lexer.Kind) lexer.Token {
	tok := p.peek()
	if tok.Kind != kind {
		panic(bail{&Error{
			err:  errs.New(errs.Parse, "%s: expected %s but found %s", tok.Position, kind, tok.Kind),
			Code: 1,
		}})
	}
	advanced, err := p.stream.Advance()
	if err != nil {
		panic(bail{&Error{err: err, Code: 2}})
	}
	return advanced
}

// syntaxError fatally fails with a generic syntax-error message, used when
// no expected-token narrows the complaint (an unrecognized production).
func (p *Parser) syntaxError() {
	tok := p.peek()
	panic(bail{&Error{
		err:  errs.New(errs.Parse, "%s: syntax error", tok.Position),
		Code: 2,
	}})
}

// parseSpre parses the outer regular-expression grammar:
//
//	spre ::= atom (postfix)*
//	postfix ::= '*' | '{' range '}' | spre | '|' spre
//	atom ::= '(' spre ')' | '[' s4u ']' | class
//
// An implicit concatenation takes a whole spre as its right operand, so a
// '*' or range after the second operand applies to that operand alone.
func (p *Parser) parseSpre() *ir.Node {
	var node *ir.Node

	switch p.peek().Kind {
	case lexer.LeftParen:
		p.expect(lexer.LeftParen)
		node = p.parseSpre()
		p.expect(lexer.RightParen)
	case lexer.LeftBracket:
		p.expect(lexer.LeftBracket)
		if p.peek().Kind == lexer.Colon {
			// A bare `[:label:]` letter: the opening bracket is the class's own.
			p.expect(lexer.Colon)
			name := p.expect(lexer.Identifier)
			p.expect(lexer.Colon)
			p.expect(lexer.RightBracket)
			node = ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: name.Lexeme})
		} else {
			tree := p.parseS4u()
			p.expect(lexer.RightBracket)
			node = tree
		}
	default:
		p.syntaxError()
	}

	for {
		switch p.peek().Kind {
		case lexer.Star:
			p.expect(lexer.Star)
			node = ir.Unary(ir.Operator{Regex: ir.KleeneStar}, node)

		case lexer.LeftParen, lexer.LeftBracket:
			right := p.parseSpre()
			node = ir.Binary(ir.Operator{Regex: ir.Concatenation}, node, right)

		case lexer.Or:
			p.expect(lexer.Or)
			right := p.parseSpre()
			node = ir.Binary(ir.Operator{Regex: ir.Alternation}, node, right)

		case lexer.LeftBrace:
			rng := p.parseRange()
			node = ir.Unary(ir.Operator{Regex: ir.RangeOp, Range: rng}, node)

		default:
			return node
		}
	}
}

// parseS4uAtom parses one s4u_atom of the truth-valued grammar, and
// parseS4u (below it) a whole s4u:
//
//	s4u ::= s4u_atom (('&'|'|') s4u)*
//	s4u_atom ::= '(' s4u ')' | '~' s4u_atom
//	          | 'NonEmpty' class | 'NonEmpty' '(' s4 ')'
//	          | 'E' '(' bindings ')' s4u | 'A' '(' bindings ')' s4u
//	          | class | s4m cmp s4m
func (p *Parser) parseS4uAtom() *ir.Node {
	var node *ir.Node

	switch p.peek().Kind {
	case lexer.LeftParen:
		p.expect(lexer.LeftParen)
		node = p.parseS4u()
		p.expect(lexer.RightParen)

	case lexer.Not:
		p.expect(lexer.Not)
		child := p.parseS4uAtom()
		node = ir.Unary(ir.Operator{Fol: ir.Negation}, child)

	case lexer.NonEmpty:
		p.expect(lexer.NonEmpty)

		// Non-greedy: NonEmpty consumes exactly a class or a
		// parenthesized S4 expression and nothing more.
		var child *ir.Node
		switch p.peek().Kind {
		case lexer.LeftBracket:
			child = p.parseClass()
		case lexer.LeftParen:
			p.expect(lexer.LeftParen)
			child = p.parseS4()
			p.expect(lexer.RightParen)
		default:
			p.syntaxError()
		}
		node = ir.Unary(ir.Operator{S4u: ir.NonEmpty}, child)

	case lexer.Exists:
		p.expect(lexer.Exists)
		p.expect(lexer.LeftParen)
		bindings := p.parseBindings()
		p.expect(lexer.RightParen)
		child := p.parseS4u()
		node = ir.Unary(ir.Operator{S4u: ir.ExistsOp, Bindings: bindings}, child)

	case lexer.Forall:
		p.expect(lexer.Forall)
		p.expect(lexer.LeftParen)
		bindings := p.parseBindings()
		p.expect(lexer.RightParen)
		child := p.parseS4u()
		node = ir.Unary(ir.Operator{S4u: ir.ForallOp, Bindings: bindings}, child)

	case lexer.At, lexer.Integer, lexer.Real, lexer.Minus:
		lhs := p.parseS4m()

		var op ir.Operator
		switch p.peek().Kind {
		case lexer.LeftChevron:
			p.expect(lexer.LeftChevron)
			op = ir.Operator{Fol: ir.LessThan}
		case lexer.RightChevron:
			p.expect(lexer.RightChevron)
			op = ir.Operator{Fol: ir.GreaterThan}
		case lexer.LeftChevronEqual:
			p.expect(lexer.LeftChevronEqual)
			op = ir.Operator{Fol: ir.LessThanEqualTo}
		case lexer.RightChevronEqual:
			p.expect(lexer.RightChevronEqual)
			op = ir.Operator{Fol: ir.GreaterThanEqualTo}
		default:
			p.syntaxError()
		}

		rhs := p.parseS4m()
		node = ir.Binary(op, lhs, rhs)

	case lexer.LeftBracket:
		node = p.parseClass()

	default:
		p.syntaxError()
	}

	return node
}

func (p *Parser) parseS4u() *ir.Node {
	node := p.parseS4uAtom()

	for {
		switch p.peek().Kind {
		case lexer.And:
			p.expect(lexer.And)
			right := p.parseS4u()
			node = ir.Binary(ir.Operator{Fol: ir.Conjunction}, node, right)

		case lexer.Or:
			p.expect(lexer.Or)
			right := p.parseS4u()
			node = ir.Binary(ir.Operator{Fol: ir.Disjunction}, node, right)

		default:
			return node
		}
	}
}

// parseBindings parses a comma-separated binder list:
//
//	bindings ::= Identifier ':=' class (',' Identifier ':=' class)*
func (p *Parser) parseBindings() map[string]*ir.Node {
	table := make(map[string]*ir.Node)

	for {
		name := p.expect(lexer.Identifier)
		p.expect(lexer.Walrus)
		class := p.parseClass()
		table[name.Lexeme] = class

		if p.peek().Kind != lexer.Comma {
			return table
		}
		p.expect(lexer.Comma)
	}
}

// parseS4m parses the scalar-arithmetic grammar:
//
//	s4m ::= s4m_atom (('+'|'-'|'*'|'/') s4m)*
//	s4m_atom ::= '(' s4m ')' | Integer | Real | '-' s4m
//	          | '@' Identifier '(' s4 ')' | '@' Identifier '(' s4 ',' s4 ')'
func (p *Parser) parseS4m() *ir.Node {
	var node *ir.Node

	switch p.peek().Kind {
	case lexer.LeftParen:
		p.expect(lexer.LeftParen)
		node = p.parseS4m()
		p.expect(lexer.RightParen)

	case lexer.At:
		p.expect(lexer.At)
		name := p.expect(lexer.Identifier)
		p.expect(lexer.LeftParen)
		child := p.parseS4()

		if p.peek().Kind == lexer.Comma {
			p.expect(lexer.Comma)
			right := p.parseS4()
			node = ir.Binary(ir.Operator{S4m: ir.FunctionOp, Function: name.Lexeme}, child, right)
		} else {
			node = ir.Unary(ir.Operator{S4m: ir.FunctionOp, Function: name.Lexeme}, child)
		}
		p.expect(lexer.RightParen)

	case lexer.Real:
		tok := p.expect(lexer.Real)
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		node = ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: value})

	case lexer.Integer:
		tok := p.expect(lexer.Integer)
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		node = ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: value})

	case lexer.Minus:
		p.expect(lexer.Minus)
		child := p.parseS4m()
		node = ir.Unary(ir.Operator{S4m: ir.Inverse}, child)

	default:
		p.syntaxError()
	}

	for {
		switch p.peek().Kind {
		case lexer.Plus:
			p.expect(lexer.Plus)
			rhs := p.parseS4m()
			node = ir.Binary(ir.Operator{S4m: ir.Addition}, node, rhs)

		case lexer.Minus:
			p.expect(lexer.Minus)
			rhs := p.parseS4m()
			node = ir.Binary(ir.Operator{S4m: ir.Subtraction}, node, rhs)

		case lexer.Star:
			p.expect(lexer.Star)
			rhs := p.parseS4m()
			node = ir.Binary(ir.Operator{S4m: ir.Multiplication}, node, rhs)

		case lexer.Slash:
			p.expect(lexer.Slash)
			rhs := p.parseS4m()
			node = ir.Binary(ir.Operator{S4m: ir.Division}, node, rhs)

		default:
			return node
		}
	}
}

// parseS4Atom parses one s4_atom of the region-algebra grammar, and parseS4
// (below it) a whole s4:
//
//	s4 ::= s4_atom (('&'|'|') s4)*
//	s4_atom ::= '(' s4 ')' | '!' s4_atom | Identifier | class
func (p *Parser) parseS4Atom() *ir.Node {
	var node *ir.Node

	switch p.peek().Kind {
	case lexer.LeftParen:
		p.expect(lexer.LeftParen)
		node = p.parseS4()
		p.expect(lexer.RightParen)

	case lexer.Identifier:
		name := p.expect(lexer.Identifier)
		node = ir.Leaf(ir.Operand{Kind: ir.VariableOperand, Variable: name.Lexeme})

	case lexer.Not:
		p.expect(lexer.Not)
		child := p.parseS4Atom()
		node = ir.Unary(ir.Operator{S4: ir.Complement}, child)

	case lexer.LeftBracket:
		node = p.parseClass()

	default:
		p.syntaxError()
	}

	return node
}

func (p *Parser) parseS4() *ir.Node {
	node := p.parseS4Atom()

	for {
		switch p.peek().Kind {
		case lexer.And:
			p.expect(lexer.And)
			right := p.parseS4()
			node = ir.Binary(ir.Operator{S4: ir.Intersection}, node, right)

		case lexer.Or:
			p.expect(lexer.Or)
			right := p.parseS4()
			node = ir.Binary(ir.Operator{S4: ir.Union}, node, right)

		default:
			return node
		}
	}
}

// parseClass parses `'[' ':' Identifier ':' ']'`.
func (p *Parser) parseClass() *ir.Node {
	p.expect(lexer.LeftBracket)
	p.expect(lexer.Colon)
	name := p.expect(lexer.Identifier)
	p.expect(lexer.Colon)
	p.expect(lexer.RightBracket)

	return ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: name.Lexeme})
}

// parseRange parses a counted-repetition bound:
//
//	range ::= '{' Integer '}' | '{' Integer ',' '}' | '{' Integer ',' Integer '}'
//
// A trailing comma whose next token is not an Integer is treated as
// AtLeast, per the reference implementation's behavior (including when that
// next token is a Real, which is accepted here rather than rejected).
func (p *Parser) parseRange() ir.Range {
	p.expect(lexer.LeftBrace)
	minTok := p.expect(lexer.Integer)
	min, _ := strconv.Atoi(minTok.Lexeme)

	var rng ir.Range
	if p.peek().Kind == lexer.Comma {
		p.expect(lexer.Comma)
		if p.peek().Kind == lexer.Integer {
			maxTok := p.expect(lexer.Integer)
			max, _ := strconv.Atoi(maxTok.Lexeme)
			rng = ir.Range{Kind: ir.Between, Min: min, Max: max}
		} else {
			if p.peek().Kind == lexer.Real {
				p.expect(lexer.Real)
			}
			rng = ir.Range{Kind: ir.AtLeast, Min: min}
		}
	} else {
		rng = ir.Range{Kind: ir.Exactly, Min: min}
	}

	p.expect(lexer.RightBrace)
	return rng
}
