package engine

import (
	"matchd/domain"

	"github.com/tidwall/btree"
)

// PriceLevel holds every resting order at one price, stored in arrival
// order. It is never reordered, including under pro-rata allocation.
type PriceLevel struct {
	Price  int64
	Orders []*domain.Order
}

// SideBook is the ordered mapping from price to a time-ordered queue of
// resting orders described by the spec's Side Book. Direction (bids
// descending, asks ascending) is encoded entirely in the btree's
// comparator, so the matcher can walk either side with the same
// best-first traversal; only its crossing check and trade roles depend on
// the incoming side.
type SideBook struct {
	levels *btree.BTreeG[*PriceLevel]
}

func newSideBook(side domain.Side) *SideBook {
	var less func(a, b *PriceLevel) bool
	if side == domain.Buy {
		// Bids: highest price first.
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	} else {
		// Asks: lowest price first.
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price }
	}
	return &SideBook{levels: btree.NewBTreeG(less)}
}

// pricesBestFirst snapshots the current price levels in best-first order.
// The matcher walks this snapshot rather than the live tree because levels
// are mutated in place and deleted once emptied while walking.
func (s *SideBook) pricesBestFirst() []int64 {
	prices := make([]int64, 0, s.levels.Len())
	s.levels.Scan(func(pl *PriceLevel) bool {
		prices = append(prices, pl.Price)
		return true
	})
	return prices
}

func (s *SideBook) level(price int64) (*PriceLevel, bool) {
	return s.levels.GetMut(&PriceLevel{Price: price})
}

func (s *SideBook) deleteLevel(price int64) {
	s.levels.Delete(&PriceLevel{Price: price})
}

// restingAppend appends o to the tail of the queue at its limit price,
// creating the price level if it does not already exist.
func (s *SideBook) restingAppend(o *domain.Order) {
	level, ok := s.level(o.Price)
	if !ok {
		level = &PriceLevel{Price: o.Price}
		s.levels.Set(level)
	}
	level.Orders = append(level.Orders, o)
}

// Len reports how many distinct price levels are resting on this side.
func (s *SideBook) Len() int {
	return s.levels.Len()
}

// Levels returns the resting price levels in best-first order. Intended
// for tests and read-only inspection; the matcher uses pricesBestFirst
// plus level/deleteLevel instead.
func (s *SideBook) Levels() []*PriceLevel {
	out := make([]*PriceLevel, 0, s.levels.Len())
	s.levels.Scan(func(pl *PriceLevel) bool {
		out = append(out, pl)
		return true
	})
	return out
}
