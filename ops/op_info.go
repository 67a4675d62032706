package ops

import (
	"fmt"

	"github.com/fangyi-zhou/souffle/ram"
)

// Info is the registered signature of an operator.
type Info struct {
	Symbol   string
	Infix    bool
	MinArity int
	// MaxArity < 0 means unbounded.
	MaxArity int
	// Args holds the required type per argument slot; variadic operators
	// repeat the last entry.
	Args   []ram.TypeAttribute
	Return ram.TypeAttribute
}

var (
	sym1   = []ram.TypeAttribute{ram.Symbol}
	sig1   = []ram.TypeAttribute{ram.Signed}
	sig2   = []ram.TypeAttribute{ram.Signed, ram.Signed}
	symVar = []ram.TypeAttribute{ram.Symbol, ram.Symbol}
)

var infos = map[Functor]Info{
	Ord:      {Symbol: "ord", MinArity: 1, MaxArity: 1, Args: sym1, Return: ram.Signed},
	StrLen:   {Symbol: "strlen", MinArity: 1, MaxArity: 1, Args: sym1, Return: ram.Signed},
	Neg:      {Symbol: "-", MinArity: 1, MaxArity: 1, Args: sig1, Return: ram.Signed},
	BNot:     {Symbol: "bnot", MinArity: 1, MaxArity: 1, Args: sig1, Return: ram.Signed},
	LNot:     {Symbol: "lnot", MinArity: 1, MaxArity: 1, Args: sig1, Return: ram.Signed},
	ToNumber: {Symbol: "to_number", MinArity: 1, MaxArity: 1, Args: sym1, Return: ram.Signed},
	ToString: {Symbol: "to_string", MinArity: 1, MaxArity: 1, Args: sig1, Return: ram.Symbol},

	Add:  {Symbol: "+", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	Sub:  {Symbol: "-", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	Mul:  {Symbol: "*", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	Div:  {Symbol: "/", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	Exp:  {Symbol: "^", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	Mod:  {Symbol: "%", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	BAnd: {Symbol: "band", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	BOr:  {Symbol: "bor", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	BXor: {Symbol: "bxor", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	LAnd: {Symbol: "land", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},
	LOr:  {Symbol: "lor", Infix: true, MinArity: 2, MaxArity: 2, Args: sig2, Return: ram.Signed},

	Max: {Symbol: "max", MinArity: 2, MaxArity: -1, Args: sig2, Return: ram.Signed},
	Min: {Symbol: "min", MinArity: 2, MaxArity: -1, Args: sig2, Return: ram.Signed},
	Cat: {Symbol: "cat", MinArity: 2, MaxArity: -1, Args: symVar, Return: ram.Symbol},

	SubStr: {
		Symbol: "substr", MinArity: 3, MaxArity: 3,
		Args:   []ram.TypeAttribute{ram.Symbol, ram.Signed, ram.Signed},
		Return: ram.Symbol,
	},
}

// ArgType returns the required type of argument slot i.
func (op Functor) ArgType(i int) ram.TypeAttribute {
	in := op.info()
	if i < 0 || (in.MaxArity >= 0 && i >= in.MaxArity) {
		panic(fmt.Sprintf("ops: argument index %d out of bounds for %q", i, in.Symbol))
	}
	if i >= len(in.Args) {
		return in.Args[len(in.Args)-1]
	}
	return in.Args[i]
}

// ReturnType returns the operator's registered return type.
func (op Functor) ReturnType() ram.TypeAttribute {
	return op.info().Return
}
