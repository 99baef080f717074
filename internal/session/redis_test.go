package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afyabuddy/internal/models"
)

func TestDial_InvalidURL(t *testing.T) {
	_, err := Dial(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := Dial(ctx, url)
	require.NoError(t, err)
	defer rdb.Close()

	s := NewRedisStore(rdb, 3, time.Minute)
	id := "test-" + uuid.NewString()
	defer rdb.Del(context.Background(), key(id))

	_, err = s.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, c := range []string{"one", "two", "three", "four"} {
		require.NoError(t, s.Append(ctx, id, msg(models.RoleUser, c)))
	}

	got, err := s.Load(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "two", got[0].Content)

	ttl, err := rdb.TTL(ctx, key(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
