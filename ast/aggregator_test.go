package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatorNoTarget(t *testing.T) {
	t.Parallel()
	a := NewAggregator(AggCount)
	require.Nil(t, a.TargetExpression())
	require.Empty(t, a.BodyLiterals())
	require.Equal(t, "count : {  }", a.String())
}

func TestAggregatorOptionalTargetEquality(t *testing.T) {
	t.Parallel()
	absent1 := NewAggregator(AggCount)
	absent2 := NewAggregator(AggCount)
	require.True(t, absent1.Equal(absent2))

	present := NewAggregator(AggCount)
	present.SetTargetExpression(NewVariable("x"))
	require.False(t, absent1.Equal(present))
	require.False(t, present.Equal(absent1))

	require.False(t, absent1.Equal(NewAggregator(AggSum)))
}

func TestAggregatorBody(t *testing.T) {
	t.Parallel()
	a := NewAggregator(AggSum)
	a.SetTargetExpression(NewVariable("x"))
	a.AddBodyLiteral(NewAtom("a", NewVariable("x")))
	a.AddBodyLiteral(NewAtom("b", NewVariable("x")))
	require.Equal(t, "sum x : { a(x), b(x) }", a.String())
	require.Len(t, a.BodyLiterals(), 2)

	// body order is significant: literals bind variables sequentially
	b := NewAggregator(AggSum)
	b.SetTargetExpression(NewVariable("x"))
	b.AddBodyLiteral(NewAtom("b", NewVariable("x")))
	b.AddBodyLiteral(NewAtom("a", NewVariable("x")))
	require.False(t, a.Equal(b))

	a.ClearBodyLiterals()
	require.Empty(t, a.BodyLiterals())
	require.Equal(t, "sum x : {  }", a.String())
}

func TestAggregatorApplyOrder(t *testing.T) {
	t.Parallel()
	a := NewAggregator(AggMin)
	a.SetTargetExpression(NewVariable("x"))
	a.AddBodyLiteral(NewAtom("p", NewVariable("x")))
	a.AddBodyLiteral(NewAtom("q", NewVariable("x")))

	var visited []string
	a.Apply(func(n Node) Node {
		visited = append(visited, n.String())
		return n
	})
	require.Equal(t, []string{"x", "p(x)", "q(x)"}, visited)

	require.Len(t, a.Children(), 3)
}

func TestAggregatorRewriteBody(t *testing.T) {
	t.Parallel()
	a := NewAggregator(AggCount)
	a.AddBodyLiteral(NewAtom("edge", NewVariable("u"), NewVariable("v")))

	out := MapBottomUp(a, func(n Node) Node {
		if at, ok := n.(*Atom); ok && at.Name() == "edge" {
			return NewAtom("path", cloneArgs(at.Arguments())...)
		}
		return n
	})
	require.Equal(t, "count : { path(u,v) }", out.String())
}
