package user_test

import (
	"sync"
	"testing"

	"github.com/dnimmo/bestretro/internal/domain"
	"github.com/dnimmo/bestretro/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ReturnsConfiguredRecord(t *testing.T) {
	p := user.NewStatic(user.Default)

	u := p.User()

	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Nimmo", u.Name)
	assert.Equal(t, "dnimmo@gmail.com", u.Email)
	assert.Equal(t, [2]string{"1", "2"}, u.Teams)
}

func TestStatic_CallerCannotMutateStoredRecord(t *testing.T) {
	p := user.NewStatic(user.Default)

	u := p.User()
	u.Name = "changed"
	u.Teams[0] = "changed"

	require.Equal(t, user.Default, p.User())
}

func TestStatic_OpaqueIdentifiers(t *testing.T) {
	rec := domain.User{
		ID:    "9a4269ee-45f2-43ed-8e81-5cc1f6b89960",
		Name:  "Nimmo",
		Email: "dnimmo@gmail.com",
		Teams: [2]string{"0e596f7d-fe22-4d97-baf3-f5c508702066", "not-a-uuid"},
	}

	assert.Equal(t, rec, user.NewStatic(rec).User())
}

func TestStatic_ConcurrentReaders(t *testing.T) {
	p := user.NewStatic(user.Default)

	var wg sync.WaitGroup
	results := make([]domain.User, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.User()
		}(i)
	}
	wg.Wait()

	for _, u := range results {
		assert.Equal(t, user.Default, u)
	}
}
