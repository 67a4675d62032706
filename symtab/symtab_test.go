package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fangyi-zhou/souffle/ram"
)

func TestIntern(t *testing.T) {
	t.Parallel()
	tab := New()
	h1 := tab.Intern("hello")
	h2 := tab.Intern("world")
	require.NotEqual(t, h1, h2)
	require.Equal(t, h1, tab.Intern("hello"))
	require.Equal(t, 2, tab.Size())

	require.Equal(t, "hello", tab.Resolve(h1))
	require.Equal(t, "world", tab.Resolve(h2))
}

func TestResolveUnknown(t *testing.T) {
	t.Parallel()
	tab := New()
	require.Panics(t, func() {
		tab.Resolve(0)
	})
	tab.Intern("x")
	require.Panics(t, func() {
		tab.Resolve(ram.Domain(-1))
	})
	require.Panics(t, func() {
		tab.Resolve(ram.Domain(1))
	})
}
