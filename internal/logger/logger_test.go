package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		log := zap.NewNop().Sugar()
		ctx := WithContext(context.Background(), log)

		require.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.NotNil(t, FromContext(nil))
	})
}
