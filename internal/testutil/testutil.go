// Package testutil has helpers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// Context returns a context for use in a test. It carries a development
// logger and is cancelled when the test ends.
func Context(t testing.TB) context.Context {
	ctx, cf := context.WithCancel(context.Background())
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	return logctx.NewContext(ctx, l)
}
