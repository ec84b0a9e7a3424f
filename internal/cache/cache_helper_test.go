package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newTestHelper(t *testing.T) *CacheHelper {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "user:")
}

func TestCacheHelper_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	helper := newTestHelper(t)

	want := cachedUser{Email: "tutor@learnhub.com", Role: "Tutor"}
	if err := helper.Set(ctx, want.Email, want, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got cachedUser
	if err := helper.Get(ctx, want.Email, &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	if err := helper.Delete(ctx, want.Email); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := helper.Get(ctx, want.Email, &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelper_GetMissing(t *testing.T) {
	ctx := context.Background()
	helper := newTestHelper(t)

	var got cachedUser
	if err := helper.Get(ctx, "missing@learnhub.com", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Get() error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelper_NilClient(t *testing.T) {
	ctx := context.Background()
	helper := NewCacheHelper(nil, "user:")

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Errorf("Set() with nil client error = %v, want nil", err)
	}
	if err := helper.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() with nil client error = %v, want nil", err)
	}

	var got string
	if err := helper.Get(ctx, "k", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Get() with nil client error = %v, want ErrCacheNotAvailable", err)
	}
}
