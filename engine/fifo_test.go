package engine

import (
	"testing"

	"matchd/domain"

	"github.com/stretchr/testify/assert"
)

func restingQueue(qtys ...uint64) *PriceLevel {
	level := &PriceLevel{Price: 100}
	for i, q := range qtys {
		level.Orders = append(level.Orders, &domain.Order{
			UserID:   string(rune('a' + i)),
			Side:     domain.Sell,
			Type:     domain.Limit,
			Price:    100,
			Quantity: q,
		})
	}
	return level
}

func TestFIFOFillsHeadFirst(t *testing.T) {
	level := restingQueue(5, 10, 10)
	fills := fifoFills(level, 12)

	assert.Equal(t, []fill{{orderIndex: 0, quantity: 5}, {orderIndex: 1, quantity: 7}}, fills)
}

func TestFIFOFillsExhaustsWholeQueue(t *testing.T) {
	level := restingQueue(5, 5)
	fills := fifoFills(level, 20)

	assert.Equal(t, []fill{{orderIndex: 0, quantity: 5}, {orderIndex: 1, quantity: 5}}, fills)
}

func TestFIFOFillsNothingWhenIncomingExhausted(t *testing.T) {
	level := restingQueue(5, 5)
	fills := fifoFills(level, 0)

	assert.Empty(t, fills)
}

func TestFIFOLaterArrivalNotFilledWhileEarlierHasResidual(t *testing.T) {
	level := restingQueue(10, 10)
	fills := fifoFills(level, 5)

	// Only the head order should have been touched.
	assert.Equal(t, []fill{{orderIndex: 0, quantity: 5}}, fills)
}
