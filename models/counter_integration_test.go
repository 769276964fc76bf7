//go:build integration

package models

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"civic-reporter-be/config"
)

// Needs a running MongoDB reachable via MONGODB_URI; run with
// -tags integration.
func TestNextSequence_ConcurrentAllocationsAreGapFree(t *testing.T) {
	collection := config.GetCollection("counters")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counterName := fmt.Sprintf("testCounter-%d", time.Now().UnixNano())
	defer func() {
		_, _ = collection.DeleteOne(context.Background(), bson.M{"_id": counterName})
	}()

	const n = 50
	results := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seq, err := NextSequence(ctx, collection, counterName)
			assert.NoError(t, err)
			results[i] = seq
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, seq := range results {
		assert.False(t, seen[seq], "sequence %d allocated twice", seq)
		seen[seq] = true
	}
	for want := int64(1); want <= n; want++ {
		assert.True(t, seen[want], "sequence %d missing: gap in allocation", want)
	}
	require.Len(t, seen, n)
}
