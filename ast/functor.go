package ast

import (
	"fmt"

	"github.com/fangyi-zhou/souffle/ops"
	"github.com/fangyi-zhou/souffle/ram"
)

// functorBase carries the owned argument children shared by the functor
// kinds.
type functorBase struct {
	base
	args []Argument
}

func (f *functorBase) Arity() int {
	return len(f.args)
}

// Arguments returns the argument children in construction order.
func (f *functorBase) Arguments() []Argument {
	return f.args
}

// Arg returns the argument at slot i.
func (f *functorBase) Arg(i int) Argument {
	f.checkIndex(i)
	return f.args[i]
}

// SetArg replaces the argument at slot i, taking ownership of arg.
func (f *functorBase) SetArg(i int, arg Argument) {
	f.checkIndex(i)
	f.args[i] = arg
}

func (f *functorBase) checkIndex(i int) {
	if i < 0 || i >= len(f.args) {
		panic(fmt.Sprintf("ast: argument index %d out of bounds (arity %d)", i, len(f.args)))
	}
}

func (f *functorBase) Children() []Node {
	return argChildren(f.args)
}

func (f *functorBase) Apply(m Mapper) {
	applyArgs(f.args, m)
}

// IntrinsicFunctor applies a registered built-in operator to its arguments.
// The argument count must satisfy the operator's registered arity at all
// times; violations are caller defects.
type IntrinsicFunctor struct {
	functorBase
	fn ops.Functor
}

func NewIntrinsicFunctor(fn ops.Functor, args ...Argument) *IntrinsicFunctor {
	if !fn.IsValidArity(len(args)) {
		panic(fmt.Sprintf("ast: %d arguments to intrinsic functor %q", len(args), fn.Symbol()))
	}
	return &IntrinsicFunctor{functorBase: functorBase{args: args}, fn: fn}
}

func (*IntrinsicFunctor) isArgument() {}

func (f *IntrinsicFunctor) Function() ops.Functor {
	return f.fn
}

// SetFunction replaces the operator. The current argument count must
// satisfy the new operator's arity.
func (f *IntrinsicFunctor) SetFunction(fn ops.Functor) {
	if !fn.IsValidArity(len(f.args)) {
		panic(fmt.Sprintf("ast: %d arguments to intrinsic functor %q", len(f.args), fn.Symbol()))
	}
	f.fn = fn
}

// ReturnType reports the operator's registered return type.
func (f *IntrinsicFunctor) ReturnType() ram.TypeAttribute {
	return f.fn.ReturnType()
}

// ArgType reports the registered type of argument slot i.
func (f *IntrinsicFunctor) ArgType(i int) ram.TypeAttribute {
	return f.fn.ArgType(i)
}

func (f *IntrinsicFunctor) String() string {
	if f.fn.IsInfix() {
		return "(" + joinArgs(f.args, f.fn.Symbol()) + ")"
	}
	return f.fn.Symbol() + "(" + joinArgs(f.args, ",") + ")"
}

func (f *IntrinsicFunctor) Equal(other Node) bool {
	o, ok := other.(*IntrinsicFunctor)
	return ok && f.fn == o.fn && equalArgs(f.args, o.args)
}

func (f *IntrinsicFunctor) Clone() Node {
	return &IntrinsicFunctor{
		functorBase: functorBase{base: f.base, args: cloneArgs(f.args)},
		fn:          f.fn,
	}
}

// UserDefinedFunctor applies a functor by name. Arity and types are not
// checked here; they are resolved against the functor's declaration by a
// later pass.
type UserDefinedFunctor struct {
	functorBase
	name string
}

func NewUserDefinedFunctor(name string, args ...Argument) *UserDefinedFunctor {
	return &UserDefinedFunctor{functorBase: functorBase{args: args}, name: name}
}

func (*UserDefinedFunctor) isArgument() {}

func (f *UserDefinedFunctor) Name() string {
	return f.name
}

func (f *UserDefinedFunctor) SetName(name string) {
	f.name = name
}

// Add appends an argument, taking ownership of it.
func (f *UserDefinedFunctor) Add(arg Argument) {
	f.args = append(f.args, arg)
}

func (f *UserDefinedFunctor) String() string {
	return "@" + f.name + "(" + joinArgs(f.args, ",") + ")"
}

func (f *UserDefinedFunctor) Equal(other Node) bool {
	o, ok := other.(*UserDefinedFunctor)
	return ok && f.name == o.name && equalArgs(f.args, o.args)
}

func (f *UserDefinedFunctor) Clone() Node {
	return &UserDefinedFunctor{
		functorBase: functorBase{base: f.base, args: cloneArgs(f.args)},
		name:        f.name,
	}
}
