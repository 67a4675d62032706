package ast

import (
	"fmt"
	"slices"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
)

// AggOp is the reduction an aggregator applies to its sub-query.
type AggOp uint8

const (
	AggMin AggOp = iota
	AggMax
	AggCount
	AggSum
)

func (op AggOp) String() string {
	switch op {
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggCount:
		return "count"
	case AggSum:
		return "sum"
	}
	panic(fmt.Sprintf("ast: unknown aggregation operator %d", uint8(op)))
}

// Aggregator reduces the results of a sub-query. The target expression is
// absent when the reduction needs none (count); body literals are
// order-significant, they may bind variables sequentially.
type Aggregator struct {
	base
	op   AggOp
	expr Argument // nil when absent
	body []Literal
}

func NewAggregator(op AggOp) *Aggregator {
	return &Aggregator{op: op}
}

func (*Aggregator) isArgument() {}

func (a *Aggregator) Operator() AggOp {
	return a.op
}

// TargetExpression returns the aggregated expression, or nil when absent.
func (a *Aggregator) TargetExpression() Argument {
	return a.expr
}

// SetTargetExpression takes ownership of expr.
func (a *Aggregator) SetTargetExpression(expr Argument) {
	a.expr = expr
}

// BodyLiterals returns the sub-query literals in construction order.
func (a *Aggregator) BodyLiterals() []Literal {
	return a.body
}

// AddBodyLiteral appends a literal, taking ownership of it.
func (a *Aggregator) AddBodyLiteral(lit Literal) {
	a.body = append(a.body, lit)
}

func (a *Aggregator) ClearBodyLiterals() {
	a.body = nil
}

func (a *Aggregator) String() string {
	sb := &strings.Builder{}
	sb.WriteString(a.op.String())
	if a.expr != nil {
		fmt.Fprintf(sb, " %v", a.expr)
	}
	parts := slices2.Map(a.body, func(l Literal) string {
		return l.String()
	})
	fmt.Fprintf(sb, " : { %s }", strings.Join(parts, ", "))
	return sb.String()
}

func (a *Aggregator) Equal(other Node) bool {
	o, ok := other.(*Aggregator)
	if !ok {
		return false
	}
	return a.op == o.op &&
		equalOptArg(a.expr, o.expr) &&
		slices.EqualFunc(a.body, o.body, func(x, y Literal) bool {
			return x.Equal(y)
		})
}

func (a *Aggregator) Clone() Node {
	res := &Aggregator{base: a.base, op: a.op}
	if a.expr != nil {
		res.expr = a.expr.Clone().(Argument)
	}
	res.body = slices2.Map(a.body, func(l Literal) Literal {
		return l.Clone().(Literal)
	})
	return res
}

// Children returns the target expression, if present, followed by the body
// literals.
func (a *Aggregator) Children() []Node {
	var res []Node
	if a.expr != nil {
		res = append(res, a.expr)
	}
	for _, l := range a.body {
		res = append(res, l)
	}
	return res
}

// Apply rewrites the target expression first, then every body literal.
func (a *Aggregator) Apply(m Mapper) {
	if a.expr != nil {
		a.expr = m(a.expr).(Argument)
	}
	for i := range a.body {
		a.body[i] = m(a.body[i]).(Literal)
	}
}
