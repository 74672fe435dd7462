package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"nupo-consult/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Name string `json:"name"`
}

func TestReadThrough_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit cache - loader not called", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, time.Minute)
		raw, _ := json.Marshal(payload{Name: "NUPO"})
		mock.ExpectGet("site:company").SetVal(string(raw))

		var got payload
		err := c.Get(ctx, "site:company", &got, func(ctx context.Context) (any, error) {
			t.Fatal("loader must not run on a hit")
			return nil, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "NUPO", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss cache - load and store", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, time.Minute)
		raw, _ := json.Marshal(payload{Name: "loaded"})
		mock.ExpectGet("site:company").RedisNil()
		mock.ExpectSet("site:company", raw, time.Minute).SetVal("OK")

		var got payload
		err := c.Get(ctx, "site:company", &got, func(ctx context.Context) (any, error) {
			return payload{Name: "loaded"}, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "loaded", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loader error is returned", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, time.Minute)
		mock.ExpectGet("site:company").RedisNil()

		var got payload
		err := c.Get(ctx, "site:company", &got, func(ctx context.Context) (any, error) {
			return nil, errors.New("db down")
		})

		assert.Error(t, err)
	})

	t.Run("nil client falls through to loader", func(t *testing.T) {
		c := cache.New(nil, time.Minute)

		var got payload
		err := c.Get(ctx, "k", &got, func(ctx context.Context) (any, error) {
			return payload{Name: "direct"}, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "direct", got.Name)
	})
}

func TestReadThrough_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.New(rdb, time.Minute)
	mock.ExpectDel("a", "b").SetVal(2)

	c.Invalidate(context.Background(), "a", "b")

	assert.NoError(t, mock.ExpectationsWereMet())
}
