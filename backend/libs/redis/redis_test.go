package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientRejectsOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "empty addr", opts: Options{Addr: "  "}, want: "addr is empty"},
		{name: "negative db", opts: Options{Addr: "localhost:6379", DB: -1}, want: "must not be negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewRedisClient(context.Background(), tc.opts)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	ro, err := Options{Addr: " localhost:6379 ", DB: 2, ReadTimeout: time.Second}.client()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", ro.Addr)
	assert.Equal(t, 2, ro.DB)
	assert.Equal(t, 5*time.Second, ro.DialTimeout)
	assert.Equal(t, time.Second, ro.ReadTimeout)
	assert.Equal(t, 3*time.Second, ro.WriteTimeout)
}
