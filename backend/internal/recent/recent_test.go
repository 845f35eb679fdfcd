package recent

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "aitools/backend/pkg/errors"
)

func TestPush(t *testing.T) {
	tests := []struct {
		name string
		list []string
		id   string
		want []string
	}{
		{"empty", nil, "a", []string{"a"}},
		{"prepends", []string{"b", "c"}, "a", []string{"a", "b", "c"}},
		{"moves existing to front", []string{"b", "a", "c"}, "a", []string{"a", "b", "c"}},
		{"already first", []string{"a", "b"}, "a", []string{"a", "b"}},
		{"caps at five", []string{"b", "c", "d", "e", "f"}, "a", []string{"a", "b", "c", "d", "e"}},
		{"dedupe before cap", []string{"b", "c", "d", "e", "a"}, "a", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]string(nil), tt.list...)
			assert.Equal(t, tt.want, Push(tt.list, tt.id, 5))
			assert.Equal(t, before, tt.list, "input must not be modified")
		})
	}

	assert.Empty(t, Push([]string{"a"}, "b", 0))
}

func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	ids, err := store.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.Set(ctx, "client-1", []string{"a", "b"}))
	require.NoError(t, store.Set(ctx, "client-2", []string{"z"}))

	ids, err = store.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids, err = store.Get(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, ids)

	require.NoError(t, store.Set(ctx, "client-1", []string{}))
	ids, err = store.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestBoltStore_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recent.db")
	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	runStoreContract(t, store)
	require.NoError(t, store.Close())

	// Data survives a reopen
	store, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()
	ids, err := store.Get(context.Background(), "client-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, ids)
}

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := NewRedisStoreFromClient(client, WithPrefix("test:recent:"), WithTTL(time.Hour))
	require.NoError(t, store.Ping(context.Background()))

	runStoreContract(t, store)

	assert.True(t, mr.Exists("test:recent:client-2"))
	assert.Equal(t, time.Hour, mr.TTL("test:recent:client-2"))
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	store := NewRedisStore(addr, "", 0)
	defer store.Close()

	_, err = store.Get(context.Background(), "c")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(NewMemoryStore())

	for _, id := range []string{"a", "b", "c", "d", "e", "f", "c"} {
		_, err := tr.Record(ctx, "client", id)
		require.NoError(t, err)
	}

	ids, err := tr.List(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "f", "e", "d", "b"}, ids)

	ids, err = tr.Record(ctx, "client", "  ")
	require.NoError(t, err)
	assert.Len(t, ids, 5, "blank ids are ignored")

	other, err := tr.List(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, tr.Clear(ctx, "client"))
	ids, err = tr.List(ctx, "client")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTracker_ConcurrentRecords(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(NewMemoryStore(), WithMax(50))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := tr.Record(ctx, "client", fmt.Sprintf("tool-%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	ids, err := tr.List(ctx, "client")
	require.NoError(t, err)
	assert.Len(t, ids, 20)
}
