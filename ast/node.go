// Package ast defines the argument sub-tree of the Datalog AST: every
// value-producing expression that can appear inside a rule, together with
// the structural equality, deep clone, and rewrite protocols the later
// compiler phases are built on.
package ast

import (
	"fmt"
	"slices"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
)

// SrcLoc records where a node came from in the input. It is copied by
// clone, ignored by equality, and never interpreted here.
type SrcLoc struct {
	File                string
	StartLine, StartCol int
	EndLine, EndCol     int
}

// Node is the interface shared by every AST node in this package. The set
// of implementations is closed; equality, cloning, printing, and rewriting
// each handle every kind.
type Node interface {
	fmt.Stringer

	// SrcLoc reports the node's source location.
	SrcLoc() SrcLoc
	// SetSrcLoc replaces the node's source location.
	SetSrcLoc(SrcLoc)
	// Equal reports structural equality with other. Nodes of different
	// concrete kinds are never equal; source locations are ignored.
	Equal(other Node) bool
	// Clone returns a deep copy sharing no owned sub-object with the
	// receiver.
	Clone() Node
	// Children returns the node's direct owned children in construction
	// order. Leaves return nil.
	Children() []Node
	// Apply hands each direct owned child to m and stores m's result in
	// the child's slot. Leaves do nothing.
	Apply(m Mapper)
}

// Mapper rewrites one owned child, returning its replacement. The mapper
// receives sole ownership of the old child and must yield sole ownership of
// the node it returns; returning a node of the wrong category for the slot
// it fills is a caller defect.
type Mapper func(Node) Node

// Argument is a node that can appear where a rule expects a value.
type Argument interface {
	Node
	isArgument()
}

// Literal is a node that can appear in an aggregator body. The argument
// layer treats literals as opaque children; only Atom is defined here, the
// full literal grammar lives with the clause layer.
type Literal interface {
	Node
	isLiteral()
}

// MapBottomUp rewrites the whole tree rooted at x. Children are rewritten
// first, in Children order, then fn is applied to the node itself; fn's
// result takes the node's place in its parent's slot.
func MapBottomUp(x Node, fn Mapper) Node {
	x.Apply(func(child Node) Node {
		return MapBottomUp(child, fn)
	})
	return fn(x)
}

// base carries the source location every node inherits.
type base struct {
	loc SrcLoc
}

func (b *base) SrcLoc() SrcLoc {
	return b.loc
}

func (b *base) SetSrcLoc(l SrcLoc) {
	b.loc = l
}

func cloneArgs(xs []Argument) []Argument {
	return slices2.Map(xs, func(a Argument) Argument {
		return a.Clone().(Argument)
	})
}

func equalArgs(a, b []Argument) bool {
	return slices.EqualFunc(a, b, func(x, y Argument) bool {
		return x.Equal(y)
	})
}

// equalOptArg treats two absent arguments as equal.
func equalOptArg(a, b Argument) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func argChildren(xs []Argument) []Node {
	return slices2.Map(xs, func(a Argument) Node {
		return Node(a)
	})
}

func applyArgs(xs []Argument, m Mapper) {
	for i := range xs {
		xs[i] = m(xs[i]).(Argument)
	}
}

func joinArgs(xs []Argument, sep string) string {
	return strings.Join(slices2.Map(xs, func(a Argument) string {
		return a.String()
	}), sep)
}
