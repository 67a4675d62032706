package ast

import (
	"fmt"

	"github.com/fangyi-zhou/souffle/ram"
	"github.com/fangyi-zhou/souffle/symtab"
)

// Constant is implemented by every constant argument. Domain returns the
// payload encoded as the fixed-width scalar; which payload kind the scalar
// holds is carried by the concrete type, not by the scalar itself.
type Constant interface {
	Argument
	Domain() ram.Domain
}

// Number is the set of payload types a NumericConstant can carry.
type Number interface {
	int32 | uint32 | float32
}

// NumericConstant holds a numeric payload of type T. Its domain value is
// the bit reinterpretation of the payload.
type NumericConstant[T Number] struct {
	base
	value T
}

// The three payload widths, named after the domains they store.
type (
	NumberConstant   = NumericConstant[int32]
	UnsignedConstant = NumericConstant[uint32]
	FloatConstant    = NumericConstant[float32]
)

func NewNumericConstant[T Number](value T) *NumericConstant[T] {
	return &NumericConstant[T]{value: value}
}

func NewNumberConstant(value int32) *NumberConstant {
	return NewNumericConstant(value)
}

func NewUnsignedConstant(value uint32) *UnsignedConstant {
	return NewNumericConstant(value)
}

func NewFloatConstant(value float32) *FloatConstant {
	return NewNumericConstant(value)
}

func (*NumericConstant[T]) isArgument() {}

func (c *NumericConstant[T]) Value() T {
	return c.value
}

func (c *NumericConstant[T]) Domain() ram.Domain {
	switch v := any(c.value).(type) {
	case int32:
		return ram.SignedToDomain(v)
	case uint32:
		return ram.UnsignedToDomain(v)
	case float32:
		return ram.FloatToDomain(v)
	}
	panic("ast: unreachable payload type")
}

func (c *NumericConstant[T]) String() string {
	return fmt.Sprint(c.value)
}

// Equal compares the encoded scalar, so two float constants holding the
// same NaN bit pattern are equal.
func (c *NumericConstant[T]) Equal(other Node) bool {
	o, ok := other.(*NumericConstant[T])
	return ok && c.Domain() == o.Domain()
}

func (c *NumericConstant[T]) Clone() Node {
	return &NumericConstant[T]{base: c.base, value: c.value}
}

func (c *NumericConstant[T]) Children() []Node {
	return nil
}

func (c *NumericConstant[T]) Apply(Mapper) {}

// StringConstant is an interned string. Its handle is only meaningful
// against the table it was interned into; clones keep the same table and
// never re-intern.
type StringConstant struct {
	base
	table  *symtab.Table
	handle ram.Domain
}

func NewStringConstant(table *symtab.Table, text string) *StringConstant {
	return &StringConstant{table: table, handle: table.Intern(text)}
}

func (*StringConstant) isArgument() {}

func (c *StringConstant) Domain() ram.Domain {
	return c.handle
}

// Value resolves the interned text.
func (c *StringConstant) Value() string {
	return c.table.Resolve(c.handle)
}

func (c *StringConstant) String() string {
	return `"` + c.Value() + `"`
}

func (c *StringConstant) Equal(other Node) bool {
	o, ok := other.(*StringConstant)
	return ok && c.handle == o.handle
}

func (c *StringConstant) Clone() Node {
	return &StringConstant{base: c.base, table: c.table, handle: c.handle}
}

func (c *StringConstant) Children() []Node {
	return nil
}

func (c *StringConstant) Apply(Mapper) {}

// NullConstant represents "no record". Its domain value is always zero.
type NullConstant struct {
	base
}

func NewNullConstant() *NullConstant {
	return &NullConstant{}
}

func (*NullConstant) isArgument() {}

func (c *NullConstant) Domain() ram.Domain {
	return 0
}

func (c *NullConstant) String() string {
	return "-"
}

func (c *NullConstant) Equal(other Node) bool {
	_, ok := other.(*NullConstant)
	return ok
}

func (c *NullConstant) Clone() Node {
	return &NullConstant{base: c.base}
}

func (c *NullConstant) Children() []Node {
	return nil
}

func (c *NullConstant) Apply(Mapper) {}
