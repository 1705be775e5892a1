package server

import (
	"sort"
	"sync"
	"testing"

	uuid "github.com/google/uuid"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestUUIDv7Generator_NewID(t *testing.T) {
	gen := NewIdentifierGenerator()

	id := gen.NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, ValidID(id))
}

func TestUUIDv7Generator_UniqueUnderConcurrency(t *testing.T) {
	gen := NewIdentifierGenerator()

	const workers, perWorker = 8, 500
	ids := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- gen.NewID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDv7Generator_SortsByCreation(t *testing.T) {
	gen := NewIdentifierGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = gen.NewID()
	}

	assert.True(t, sort.StringsAreSorted(ids))
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"0190a5f2-7c1e-7a3b-9d2e-5f6a7b8c9d0e", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"", false},
		{"not-a-uuid", false},
		{"../../etc/passwd", false},
		{"{550e8400-e29b-41d4-a716-446655440000}", false},
		{"urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"550e8400e29b41d4a716446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidID(tt.id))
		})
	}
}
