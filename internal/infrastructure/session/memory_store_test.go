package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Put(ctx, "tok", domain.Session{UserID: "u1", Role: domain.RoleAdmin}))
	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "tok", domain.Session{UserID: "u1", Role: domain.RoleAdmin}))

	got, _ := store.Get(ctx, "tok")
	got.Role = "member"

	again, _ := store.Get(ctx, "tok")
	assert.Equal(t, domain.RoleAdmin, again.Role)
}

func TestMemoryStore_ConcurrentLogins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			_ = store.Put(ctx, tok, domain.Session{UserID: fmt.Sprintf("u%d", i)})
			_, _ = store.Get(ctx, tok)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
