package suite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Keeps the last error when every attempt fails", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Given: a retry that makes three attempts against a closed port
		attempts := 0
		retry := func(op func() error) error {
			var err error
			for i := 0; i < 3; i++ {
				attempts++
				if err = op(); err == nil {
					return nil
				}
			}
			return err
		}

		// When: connecting
		client, err := connect(ctx, retry, "127.0.0.1:1")

		// Then: the ping error is returned and no client is handed out
		require.Error(t, err)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
		assert.NotContains(t, err.Error(), "<nil>")
		assert.Nil(t, client)
		assert.Equal(t, 3, attempts)
	})
}
