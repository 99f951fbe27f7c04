package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/patternkit/internal/metrics"
)

func TestManager_CreateAndLookup(t *testing.T) {
	before := metrics.SessionsCreated.Value()
	m := NewManager(time.Minute, time.Minute, nil)

	id := m.Create(42)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.True(t, m.Valid(id))
	userID, err := m.UserID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, 1, m.Active())
	assert.Equal(t, before+1, metrics.SessionsCreated.Value())
}

func TestManager_UnknownSession(t *testing.T) {
	m := NewManager(time.Minute, time.Minute, nil)
	assert.False(t, m.Valid("nope"))
	_, err := m.UserID("nope")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, m.Touch("nope"), ErrNoSession)
	m.Expire("nope")
}

func TestManager_Expire(t *testing.T) {
	m := NewManager(time.Minute, time.Minute, nil)
	id := m.Create(1)
	m.Expire(id)
	assert.False(t, m.Valid(id))
	_, err := m.UserID(id)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_TTL(t *testing.T) {
	m := NewManager(20*time.Millisecond, time.Minute, nil)
	id := m.Create(7)
	time.Sleep(40 * time.Millisecond)
	assert.False(t, m.Valid(id))
}

func TestManager_Touch(t *testing.T) {
	m := NewManager(50*time.Millisecond, time.Minute, nil)
	id := m.Create(7)

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, m.Touch(id))
	time.Sleep(30 * time.Millisecond)

	assert.True(t, m.Valid(id))
}

func TestManager_DistinctIDs(t *testing.T) {
	m := NewManager(time.Minute, time.Minute, nil)
	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			id := m.Create(uid)
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}(int64(i))
	}
	wg.Wait()
	assert.Len(t, seen, 50)
	assert.Equal(t, 50, m.Active())
}
