package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestNewRedis(t *testing.T) {
	t.Run("Connects", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := NewRedis(ctx, st.Storage.Options().Addr)

		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})

	t.Run("Unreachable address", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_, err := NewRedis(ctx, "127.0.0.1:1")

		assert.Error(t, err)
	})
}
