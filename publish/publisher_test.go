package publish

import (
	"context"
	"testing"
	"time"

	"matchd/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// TestPublishSwallowsConnectionFailures exercises the §6 guarantee that a
// publishing failure is logged and dropped, never surfaced to the caller.
// It points at a port nothing is listening on rather than requiring a
// running Redis instance.
func TestPublishSwallowsConnectionFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer client.Close()

	p := New(client)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NotPanics(t, func() {
		p.Publish(ctx, []domain.Trade{{
			Price:     100,
			Quantity:  5,
			Buyer:     "b1",
			Seller:    "s1",
			Timestamp: time.Now(),
		}})
	})
}
