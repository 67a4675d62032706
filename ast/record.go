package ast

import "fmt"

// RecordInit builds a record value from its components.
type RecordInit struct {
	base
	args []Argument
}

func NewRecordInit(args ...Argument) *RecordInit {
	return &RecordInit{args: args}
}

func (*RecordInit) isArgument() {}

// Add appends a component, taking ownership of it.
func (r *RecordInit) Add(arg Argument) {
	r.args = append(r.args, arg)
}

// Arguments returns the components in construction order.
func (r *RecordInit) Arguments() []Argument {
	return r.args
}

func (r *RecordInit) String() string {
	return "[" + joinArgs(r.args, ",") + "]"
}

func (r *RecordInit) Equal(other Node) bool {
	o, ok := other.(*RecordInit)
	return ok && equalArgs(r.args, o.args)
}

func (r *RecordInit) Clone() Node {
	return &RecordInit{base: r.base, args: cloneArgs(r.args)}
}

func (r *RecordInit) Children() []Node {
	return argChildren(r.args)
}

func (r *RecordInit) Apply(m Mapper) {
	applyArgs(r.args, m)
}

// TypeID names the target type of a cast. Resolution happens in the type
// checker, not here.
type TypeID string

// TypeCast reinterprets a value's static type.
type TypeCast struct {
	base
	value Argument
	typ   TypeID
}

func NewTypeCast(value Argument, typ TypeID) *TypeCast {
	return &TypeCast{value: value, typ: typ}
}

func (*TypeCast) isArgument() {}

// Value returns the casted argument.
func (c *TypeCast) Value() Argument {
	return c.value
}

// Type returns the target type name.
func (c *TypeCast) Type() TypeID {
	return c.typ
}

func (c *TypeCast) SetType(typ TypeID) {
	c.typ = typ
}

func (c *TypeCast) String() string {
	return fmt.Sprintf("as(%v,%v)", c.value, c.typ)
}

func (c *TypeCast) Equal(other Node) bool {
	o, ok := other.(*TypeCast)
	return ok && c.typ == o.typ && c.value.Equal(o.value)
}

func (c *TypeCast) Clone() Node {
	return &TypeCast{base: c.base, value: c.value.Clone().(Argument), typ: c.typ}
}

func (c *TypeCast) Children() []Node {
	return []Node{c.value}
}

func (c *TypeCast) Apply(m Mapper) {
	c.value = m(c.value).(Argument)
}
