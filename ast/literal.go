package ast

// Atom is a positive literal: a relation name applied to arguments. It is
// the minimal literal an aggregator body needs; negation and constraints
// live with the clause layer.
type Atom struct {
	base
	name string
	args []Argument
}

func NewAtom(name string, args ...Argument) *Atom {
	return &Atom{name: name, args: args}
}

func (*Atom) isLiteral() {}

func (a *Atom) Name() string {
	return a.name
}

func (a *Atom) SetName(name string) {
	a.name = name
}

// Add appends an argument, taking ownership of it.
func (a *Atom) Add(arg Argument) {
	a.args = append(a.args, arg)
}

// Arguments returns the arguments in construction order.
func (a *Atom) Arguments() []Argument {
	return a.args
}

func (a *Atom) String() string {
	return a.name + "(" + joinArgs(a.args, ",") + ")"
}

func (a *Atom) Equal(other Node) bool {
	o, ok := other.(*Atom)
	return ok && a.name == o.name && equalArgs(a.args, o.args)
}

func (a *Atom) Clone() Node {
	return &Atom{base: a.base, name: a.name, args: cloneArgs(a.args)}
}

func (a *Atom) Children() []Node {
	return argChildren(a.args)
}

func (a *Atom) Apply(m Mapper) {
	applyArgs(a.args, m)
}
