package ast

import "fmt"

// Variable is a named variable.
type Variable struct {
	base
	name string
}

func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (*Variable) isArgument() {}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) SetName(name string) {
	v.name = name
}

func (v *Variable) String() string {
	return v.name
}

func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && v.name == o.name
}

func (v *Variable) Clone() Node {
	return &Variable{base: v.base, name: v.name}
}

func (v *Variable) Children() []Node {
	return nil
}

func (v *Variable) Apply(Mapper) {}

// UnnamedVariable matches anything and is never bound.
type UnnamedVariable struct {
	base
}

func NewUnnamedVariable() *UnnamedVariable {
	return &UnnamedVariable{}
}

func (*UnnamedVariable) isArgument() {}

func (v *UnnamedVariable) String() string {
	return "_"
}

func (v *UnnamedVariable) Equal(other Node) bool {
	_, ok := other.(*UnnamedVariable)
	return ok
}

func (v *UnnamedVariable) Clone() Node {
	return &UnnamedVariable{base: v.base}
}

func (v *UnnamedVariable) Children() []Node {
	return nil
}

func (v *UnnamedVariable) Apply(Mapper) {}

// Counter stands for a fresh integer drawn at evaluation time.
type Counter struct {
	base
}

func NewCounter() *Counter {
	return &Counter{}
}

func (*Counter) isArgument() {}

func (c *Counter) String() string {
	return "$"
}

func (c *Counter) Equal(other Node) bool {
	_, ok := other.(*Counter)
	return ok
}

func (c *Counter) Clone() Node {
	return &Counter{base: c.base}
}

func (c *Counter) Children() []Node {
	return nil
}

func (c *Counter) Apply(Mapper) {}

// SubroutineArgument refers to the Nth parameter of a generated subroutine.
type SubroutineArgument struct {
	base
	number int
}

func NewSubroutineArgument(number int) *SubroutineArgument {
	return &SubroutineArgument{number: number}
}

func (*SubroutineArgument) isArgument() {}

func (s *SubroutineArgument) Number() int {
	return s.number
}

func (s *SubroutineArgument) String() string {
	return fmt.Sprintf("arg_%d", s.number)
}

func (s *SubroutineArgument) Equal(other Node) bool {
	o, ok := other.(*SubroutineArgument)
	return ok && s.number == o.number
}

func (s *SubroutineArgument) Clone() Node {
	return &SubroutineArgument{base: s.base, number: s.number}
}

func (s *SubroutineArgument) Children() []Node {
	return nil
}

func (s *SubroutineArgument) Apply(Mapper) {}
