// Package domain holds the value types shared by the matching core and its
// transport and publishing collaborators.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Side is which side of the book an order belongs to.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// OrderType distinguishes resting limit orders from immediate-or-discard
// market orders.
type OrderType int

const (
	Limit OrderType = iota
	Market
)

func (t OrderType) String() string {
	if t == Limit {
		return "limit"
	}
	return "market"
}

// Order is an immutable submission once it leaves the caller: only
// Quantity is ever mutated, and only by the book it is submitted to.
type Order struct {
	ID        string
	UserID    string
	Symbol    string
	Side      Side
	Type      OrderType
	Price     int64 // meaningful only when Type == Limit
	Quantity  uint64
	Timestamp time.Time
}

// NewOrderID assigns a globally unique identifier at order creation, the
// way the boundary layer is expected to do before handing an Order to the
// book.
func NewOrderID() string {
	return uuid.New().String()
}
