package minforth

import (
	"strconv"
	"strings"
)

// TokenKind identifies which variant a Token is.
type TokenKind int

// Token kinds.
const (
	NumberKind TokenKind = iota
	OperatorKind
	WordKind
)

// Token is one parsed unit of program text; it is one of Number, Operator, or
// WordRef, and no other type may implement it.
type Token interface {
	Kind() TokenKind
	String() string
	token()
}

// Number is a literal integer, pushed when executed.
type Number int

// Operator is a built-in operation.
type Operator OpKind

// WordRef refers to a defined word. Body is the definition table's token
// sequence, shared and never modified after definition; executing a WordRef
// executes Body inline.
type WordRef struct {
	Name string
	Body []Token
}

func (Number) Kind() TokenKind   { return NumberKind }
func (Operator) Kind() TokenKind { return OperatorKind }
func (WordRef) Kind() TokenKind  { return WordKind }

func (Number) token()   {}
func (Operator) token() {}
func (WordRef) token()  {}

func (n Number) String() string    { return strconv.Itoa(int(n)) }
func (op Operator) String() string { return OpKind(op).Symbol() }
func (ref WordRef) String() string { return ref.Name }

// OpKind enumerates the built-in operations.
type OpKind int

// Built-in operations.
const (
	Add OpKind = iota
	Subtract
	Multiply
	Divide
	Dup
	Swap
	Over
	Drop

	opKindMax
)

var opSymbols = [opKindMax]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
	Dup:      "dup",
	Swap:     "swap",
	Over:     "over",
	Drop:     "drop",
}

var opNames = [opKindMax]string{
	Add:      "Addition",
	Subtract: "Subtraction",
	Multiply: "Multiplication",
	Divide:   "Division",
	Dup:      "Duplicating",
	Swap:     "Swapping",
	Over:     "Overing",
	Drop:     "Dropping",
}

// Symbol returns the surface form used to write op in program text.
func (op OpKind) Symbol() string {
	if op >= 0 && op < opKindMax {
		return opSymbols[op]
	}
	return ""
}

// Name returns the human readable name used in error messages.
func (op OpKind) Name() string {
	if op >= 0 && op < opKindMax {
		return opNames[op]
	}
	return "OpKind(" + strconv.Itoa(int(op)) + ")"
}

func (op OpKind) String() string { return op.Name() }

// lookupOp matches an already case-folded word against the operator symbols.
func lookupOp(key string) (OpKind, bool) {
	for op, sym := range opSymbols {
		if sym == key {
			return OpKind(op), true
		}
	}
	return 0, false
}

func formatTokens(toks []Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}
