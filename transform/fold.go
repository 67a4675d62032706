// Package transform contains rewriting passes over argument trees, built on
// the ast rewrite protocol.
package transform

import (
	"context"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/fangyi-zhou/souffle/ast"
)

// FoldConstants rewrites, bottom-up, every intrinsic functor whose
// arguments are all signed numeric constants into the constant it computes.
// Functors the registry cannot evaluate over signed values, or whose
// evaluation would trap (division by zero), are left in place.
func FoldConstants(ctx context.Context, x ast.Node) ast.Node {
	return ast.MapBottomUp(x, func(n ast.Node) ast.Node {
		f, ok := n.(*ast.IntrinsicFunctor)
		if !ok {
			return n
		}
		args := make([]int32, 0, f.Arity())
		for _, a := range f.Arguments() {
			c, ok := a.(*ast.NumberConstant)
			if !ok {
				return n
			}
			args = append(args, c.Value())
		}
		v, ok := f.Function().EvalSigned(args...)
		if !ok {
			return n
		}
		res := ast.NewNumberConstant(v)
		res.SetSrcLoc(f.SrcLoc())
		logctx.Debug(ctx, "folded intrinsic functor",
			zap.String("functor", f.Function().Symbol()),
			zap.Int32("value", v))
		return res
	})
}
