// Package ops is the registry of intrinsic functor operators: arity, per-slot
// argument types, return type, and print form for each built-in.
package ops

import "fmt"

// Functor identifies an intrinsic operator.
type Functor uint8

const (
	// Unary
	Ord Functor = iota
	StrLen
	Neg
	BNot
	LNot
	ToNumber
	ToString

	// Binary, printed infix
	Add
	Sub
	Mul
	Div
	Exp
	Mod
	BAnd
	BOr
	BXor
	LAnd
	LOr

	// Variadic
	Max
	Min
	Cat

	// Ternary
	SubStr
)

// Symbol returns the operator's printable symbol.
func (op Functor) Symbol() string {
	return op.info().Symbol
}

// IsInfix reports whether the operator prints between its arguments.
func (op Functor) IsInfix() bool {
	return op.info().Infix
}

// IsValidArity reports whether the operator accepts n arguments.
func (op Functor) IsValidArity(n int) bool {
	in := op.info()
	if n < in.MinArity {
		return false
	}
	return in.MaxArity < 0 || n <= in.MaxArity
}

func (op Functor) String() string {
	return op.info().Symbol
}

func (op Functor) info() Info {
	in, exists := infos[op]
	if !exists {
		panic(fmt.Sprintf("ops: unknown functor %d", uint8(op)))
	}
	return in
}
