// Package gen implements the build-time expansion protocol behind
// dyneq-gen: it parses declarative invocations naming an abstract
// interface and emits the equality operators for that interface across
// every marker combination.
//
// An invocation has the shape
//
//	[params] path where bounds
//
// where the bracketed type-parameter list and the where clause are both
// optional:
//
//	Shape
//	mypkg.Shape
//	[T] Container[T] where T comparable
//	[K comparable, V any] Registry[K, V]
//
// Parsing is a state machine over Go tokens. All failures happen at
// generation time; there is no runtime parse path.
package gen

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/amp-labs/amp-dyneq/errors"
)

var (
	// ErrEmptyInvocation reports an invocation with no tokens at all.
	ErrEmptyInvocation = fmt.Errorf("%w: empty invocation", errors.ErrMalformedInvocation)

	// ErrUnbalancedBrackets reports a generic clause whose brackets never
	// close, or close more often than they open.
	ErrUnbalancedBrackets = fmt.Errorf("%w: unbalanced brackets", errors.ErrMalformedInvocation)

	// ErrEmptyPath reports an invocation without an interface path.
	ErrEmptyPath = fmt.Errorf("%w: missing interface path", errors.ErrMalformedInvocation)

	// ErrUnexpectedToken reports a token that no state accepts.
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", errors.ErrMalformedInvocation)

	// ErrDanglingWhere reports a where clause on an invocation that
	// declares no type parameters, or one that names an undeclared one.
	ErrDanglingWhere = fmt.Errorf("%w: where clause does not match type parameters", errors.ErrMalformedInvocation)
)

// Param is one generic parameter of an invocation. A parameter without an
// explicit bound defaults to comparable, the eligibility constraint.
type Param struct {
	Name  string
	Bound string
}

// Invocation is a parsed expansion request.
type Invocation struct {
	// Raw is the invocation text as given.
	Raw string

	// Params are the generic parameters, in declaration order.
	Params []Param

	// Path is the interface type expression, e.g. "Shape" or
	// "pkg.Container[T]".
	Path string

	// Name is the bare interface identifier used to derive generated
	// function names, e.g. "Container" for "pkg.Container[T]".
	Name string
}

// Generic reports whether the invocation declares type parameters.
func (inv Invocation) Generic() bool {
	return len(inv.Params) > 0
}

// TypeParams renders the type-parameter declaration for generated
// functions, e.g. "[T comparable, U any]", or "" for non-generic targets.
func (inv Invocation) TypeParams() string {
	if !inv.Generic() {
		return ""
	}

	parts := make([]string, 0, len(inv.Params))
	for _, p := range inv.Params {
		parts = append(parts, p.Name+" "+p.Bound)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// tok is one scanned token with its literal text.
type tok struct {
	kind token.Token
	lit  string
}

func (t tok) text() string {
	if t.lit != "" {
		return t.lit
	}

	return t.kind.String()
}

// wordy reports whether the token needs a space before another wordy
// token when rendering the stream back to source text.
func (t tok) wordy() bool {
	return t.lit != ""
}

// parseState enumerates the parser's states.
type parseState int

const (
	stateBegin parseState = iota
	stateGenerics
	statePath
	stateImpl
)

// Parse parses one declarative invocation.
func Parse(raw string) (Invocation, error) {
	toks, err := scan(raw)
	if err != nil {
		return Invocation{}, err
	}

	if len(toks) == 0 {
		return Invocation{}, fmt.Errorf("%w (%q)", ErrEmptyInvocation, raw)
	}

	var (
		generics []tok
		path     []tok
		bounds   []tok
		depth    int
	)

	state := stateBegin

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		switch state {
		case stateBegin:
			if t.kind == token.LBRACK {
				state = stateGenerics
				depth = 1

				continue
			}

			state = statePath
			i-- // reprocess in the path state

		case stateGenerics:
			switch t.kind {
			case token.LBRACK:
				depth++
			case token.RBRACK:
				depth--
				if depth == 0 {
					state = statePath

					continue
				}
			}

			generics = append(generics, t)

		case statePath:
			if t.kind == token.IDENT && t.lit == "where" && depth == 0 {
				state = stateImpl

				continue
			}

			switch t.kind {
			case token.IDENT, token.PERIOD:
			case token.LBRACK:
				depth++
			case token.RBRACK, token.COMMA:
				if t.kind == token.RBRACK {
					depth--
				}

				if depth < 0 {
					return Invocation{}, fmt.Errorf("%w in path of %q", ErrUnbalancedBrackets, raw)
				}

				if depth == 0 && t.kind == token.COMMA {
					return Invocation{}, fmt.Errorf("%w %q in %q", ErrUnexpectedToken, t.text(), raw)
				}
			default:
				return Invocation{}, fmt.Errorf("%w %q in %q", ErrUnexpectedToken, t.text(), raw)
			}

			path = append(path, t)

		case stateImpl:
			bounds = append(bounds, t)
		}
	}

	if state == stateGenerics || depth != 0 {
		return Invocation{}, fmt.Errorf("%w in %q", ErrUnbalancedBrackets, raw)
	}

	if len(path) == 0 {
		return Invocation{}, fmt.Errorf("%w in %q", ErrEmptyPath, raw)
	}

	params, err := parseParams(generics, raw)
	if err != nil {
		return Invocation{}, err
	}

	if err := applyBounds(params, bounds, state == stateImpl, raw); err != nil {
		return Invocation{}, err
	}

	for i := range params {
		if params[i].Bound == "" {
			params[i].Bound = "comparable"
		}
	}

	name := pathName(path)
	if name == "" {
		return Invocation{}, fmt.Errorf("%w in %q", ErrEmptyPath, raw)
	}

	return Invocation{
		Raw:    raw,
		Params: params,
		Path:   render(path),
		Name:   name,
	}, nil
}

// scan tokenizes the invocation with the Go scanner, dropping the
// semicolons it inserts at end of input.
func scan(raw string) ([]tok, error) {
	var (
		s        scanner.Scanner
		scanErrs []string
		toks     []tok
	)

	fset := token.NewFileSet()
	file := fset.AddFile("invocation", fset.Base(), len(raw))

	s.Init(file, []byte(raw), func(_ token.Position, msg string) {
		scanErrs = append(scanErrs, msg)
	}, 0)

	for {
		_, kind, lit := s.Scan()
		if kind == token.EOF {
			break
		}

		if kind == token.SEMICOLON && lit == "\n" {
			continue
		}

		toks = append(toks, tok{kind: kind, lit: lit})
	}

	if len(scanErrs) > 0 {
		return nil, fmt.Errorf("%w: %s in %q", errors.ErrMalformedInvocation, strings.Join(scanErrs, "; "), raw)
	}

	return toks, nil
}

// parseParams splits the generic clause on top-level commas. Each entry is
// an identifier optionally followed by its bound.
func parseParams(generics []tok, raw string) ([]Param, error) {
	if len(generics) == 0 {
		return nil, nil
	}

	var params []Param

	for _, entry := range splitTopLevel(generics) {
		if len(entry) == 0 || entry[0].kind != token.IDENT {
			return nil, fmt.Errorf("%w in type parameters of %q", ErrUnexpectedToken, raw)
		}

		params = append(params, Param{
			Name:  entry[0].lit,
			Bound: render(entry[1:]),
		})
	}

	return params, nil
}

// applyBounds merges the where clause into the declared parameters.
// Bounds given in the where clause override inline ones.
func applyBounds(params []Param, bounds []tok, hasWhere bool, raw string) error {
	if !hasWhere {
		return nil
	}

	if len(params) == 0 {
		return fmt.Errorf("%w: no type parameters in %q", ErrDanglingWhere, raw)
	}

	for _, entry := range splitTopLevel(bounds) {
		if len(entry) < 2 || entry[0].kind != token.IDENT {
			return fmt.Errorf("%w in where clause of %q", ErrUnexpectedToken, raw)
		}

		name := entry[0].lit
		found := false

		for i := range params {
			if params[i].Name == name {
				params[i].Bound = render(entry[1:])
				found = true

				break
			}
		}

		if !found {
			return fmt.Errorf("%w: %q is not declared in %q", ErrDanglingWhere, name, raw)
		}
	}

	return nil
}

// splitTopLevel splits a token stream on commas that sit outside any
// bracket, brace, or parenthesis nesting, so that nested generic
// parameters pass through whole.
func splitTopLevel(toks []tok) [][]tok {
	var (
		out   [][]tok
		entry []tok
		depth int
	)

	for _, t := range toks {
		switch t.kind {
		case token.LBRACK, token.LBRACE, token.LPAREN:
			depth++
		case token.RBRACK, token.RBRACE, token.RPAREN:
			depth--
		case token.COMMA:
			if depth == 0 {
				out = append(out, entry)
				entry = nil

				continue
			}
		}

		entry = append(entry, t)
	}

	if len(entry) > 0 || len(out) > 0 {
		out = append(out, entry)
	}

	return out
}

// render reconstructs source text from a token stream, spacing word-like
// tokens apart and keeping punctuation tight.
func render(toks []tok) string {
	var b strings.Builder

	for i, t := range toks {
		if i > 0 && t.wordy() && toks[i-1].wordy() {
			b.WriteByte(' ')
		}

		b.WriteString(t.text())
	}

	return b.String()
}

// pathName extracts the interface identifier the generated names derive
// from: the last identifier outside any type-argument brackets.
func pathName(path []tok) string {
	var (
		name  string
		depth int
	)

	for _, t := range path {
		switch t.kind {
		case token.LBRACK:
			depth++
		case token.RBRACK:
			depth--
		case token.IDENT:
			if depth == 0 {
				name = t.lit
			}
		}
	}

	return name
}
