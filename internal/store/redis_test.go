package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	st, err := NewRedisStore(&redis.Options{Addr: addr})
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	defer st.Close()

	surprise := testSurprise("cafebabe00000001")
	if err := st.Save(context.Background(), surprise); err != nil {
		t.Fatalf("save: %v", err)
	}
	defer st.client.Del(context.Background(), surpriseKey(surprise.ID))

	got, err := st.FindByID(context.Background(), surprise.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != surprise.ID {
		t.Fatalf("id mismatch: got %s, want %s", got.ID, surprise.ID)
	}
	if got.SecretKey != surprise.SecretKey || got.SenderName != surprise.SenderName {
		t.Fatalf("record mismatch: %+v", got)
	}
	if len(got.Photos) != 1 || got.Photos[0].Data != surprise.Photos[0].Data {
		t.Fatalf("photos mismatch: %+v", got.Photos)
	}

	if _, err := st.FindByID(context.Background(), "ffffffffffffffff"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
