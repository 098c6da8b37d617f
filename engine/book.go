// Package engine is the matching core: the Order Book data structure and
// the FIFO / Pro-Rata matchers that run against it. Nothing in this
// package performs I/O; submit_order is a synchronous, in-memory call.
package engine

import (
	"time"

	"matchd/domain"
)

// Book is the Order Book of the spec: two symmetric SideBooks plus an
// immutable matching mode. It is a plain owned value with no global
// state, and it is not internally synchronized — callers that share a
// Book across goroutines must serialize submit_order calls themselves.
type Book struct {
	mode Mode
	bids *SideBook
	asks *SideBook
}

// NewBook constructs an empty Order Book for the given matching mode. The
// mode cannot be changed after construction.
func NewBook(mode Mode) *Book {
	return &Book{
		mode: mode,
		bids: newSideBook(domain.Buy),
		asks: newSideBook(domain.Sell),
	}
}

// Mode reports the book's matching mode.
func (b *Book) Mode() Mode {
	return b.mode
}

// Bids exposes the resting buy side for inspection (tests, depth queries).
func (b *Book) Bids() *SideBook { return b.bids }

// Asks exposes the resting sell side for inspection (tests, depth queries).
func (b *Book) Asks() *SideBook { return b.asks }

// SubmitOrder is the Order Book's one operation: it matches the incoming
// order against the opposing side, mutates resting state in place, and
// returns the trades produced, in the order they occurred. The caller
// consumes order: nothing in the book aliases it back to the caller, and
// the book exclusively owns whatever of it ends up resting.
func (b *Book) SubmitOrder(order *domain.Order) []domain.Trade {
	switch order.Side {
	case domain.Buy:
		return b.match(order, b.asks, b.bids, true)
	default:
		return b.match(order, b.bids, b.asks, false)
	}
}

// match is the symmetric matcher of §4.2, shared by both sides. opposing
// is the book being walked for fills; same is where unfilled limit
// residue rests. incomingIsBuyer selects the crossing comparison
// direction and which side of each emitted Trade the incoming order
// occupies.
func (b *Book) match(incoming *domain.Order, opposing, same *SideBook, incomingIsBuyer bool) []domain.Trade {
	var trades []domain.Trade

	for _, price := range opposing.pricesBestFirst() {
		if incoming.Quantity == 0 {
			break
		}
		if incoming.Type == domain.Limit {
			if incomingIsBuyer && price > incoming.Price {
				break
			}
			if !incomingIsBuyer && price < incoming.Price {
				break
			}
		}

		level, ok := opposing.level(price)
		if !ok {
			// Defensive only: each snapshot price is visited once and only
			// the level being visited is ever deleted.
			continue
		}

		var fills []fill
		switch b.mode {
		case ProRata:
			fills = prorataFills(level, incoming.Quantity)
		default:
			fills = fifoFills(level, incoming.Quantity)
		}

		now := time.Now()
		for _, f := range fills {
			resting := level.Orders[f.orderIndex]
			resting.Quantity -= f.quantity
			incoming.Quantity -= f.quantity

			trade := domain.Trade{
				Price:     price,
				Quantity:  f.quantity,
				Timestamp: now,
			}
			if incomingIsBuyer {
				trade.Buyer, trade.Seller = incoming.UserID, resting.UserID
			} else {
				trade.Buyer, trade.Seller = resting.UserID, incoming.UserID
			}
			trades = append(trades, trade)
		}

		level.Orders = compactFilled(level.Orders)
		if len(level.Orders) == 0 {
			opposing.deleteLevel(price)
		}
	}

	if incoming.Quantity > 0 && incoming.Type == domain.Limit {
		same.restingAppend(incoming)
	}

	return trades
}

// compactFilled removes fully-filled orders from a level's queue while
// preserving arrival order of the survivors, maintaining the invariant
// that a queue never holds a zero-quantity order.
func compactFilled(orders []*domain.Order) []*domain.Order {
	kept := orders[:0]
	for _, o := range orders {
		if o.Quantity > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}
