package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.brendoncarroll.net/exp/slices2"

	"github.com/fangyi-zhou/souffle/ops"
)

func TestApplyOrder(t *testing.T) {
	t.Parallel()
	f := NewIntrinsicFunctor(ops.Add, NewVariable("a"), NewVariable("b"))

	var visited []string
	f.Apply(func(n Node) Node {
		visited = append(visited, n.String())
		return n
	})
	require.Equal(t, []string{"a", "b"}, visited)

	childStrs := slices2.Map(f.Children(), func(n Node) string {
		return n.String()
	})
	require.Equal(t, visited, childStrs)
}

func TestApplyReplaces(t *testing.T) {
	t.Parallel()
	f := NewIntrinsicFunctor(ops.Add, NewVariable("a"), NewVariable("b"))
	f.Apply(func(n Node) Node {
		if v, ok := n.(*Variable); ok && v.Name() == "a" {
			return NewNumberConstant(1)
		}
		return n
	})
	require.Equal(t, "(1+b)", f.String())
}

func TestLeavesHaveNoChildren(t *testing.T) {
	t.Parallel()
	leaves := []Node{
		NewVariable("x"),
		NewUnnamedVariable(),
		NewCounter(),
		NewNumberConstant(1),
		NewNullConstant(),
		NewSubroutineArgument(3),
	}
	for _, l := range leaves {
		require.Empty(t, l.Children(), "%v", l)
		l.Apply(func(n Node) Node {
			t.Fatalf("leaf %v offered a child", l)
			return n
		})
	}
}

func TestMapBottomUpOrder(t *testing.T) {
	t.Parallel()
	f := NewIntrinsicFunctor(ops.Add, NewVariable("a"), NewVariable("b"))

	var visited []string
	MapBottomUp(f, func(n Node) Node {
		visited = append(visited, n.String())
		return n
	})
	require.Equal(t, []string{"a", "b", "(a+b)"}, visited)
}

func TestMapBottomUpRewrites(t *testing.T) {
	t.Parallel()
	// rename every variable v to v' across a nested tree
	rec := NewRecordInit(
		NewVariable("x"),
		NewIntrinsicFunctor(ops.Add, NewVariable("y"), NewNumberConstant(1)),
		NewTypeCast(NewVariable("z"), "symbol"),
	)
	out := MapBottomUp(rec, func(n Node) Node {
		if v, ok := n.(*Variable); ok {
			return NewVariable(v.Name() + "'")
		}
		return n
	})
	require.Equal(t, "[x',(y'+1),as(z',symbol)]", out.String())
}
