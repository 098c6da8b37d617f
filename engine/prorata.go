package engine

import (
	"math/bits"
	"sort"
)

// prorataFills implements the §4.4 Pro-Rata level allocator using the
// integer formulation the spec allows in place of the floating-point
// reference prose: fᵢ = (qᵢ · Q) / S with truncating division. The qᵢ·Q
// product is formed as a 128-bit intermediate, so it cannot overflow; since
// qᵢ ≤ S, the quotient always fits back into a uint64.
func prorataFills(level *PriceLevel, incomingRemaining uint64) []fill {
	n := len(level.Orders)
	var total uint64
	for _, o := range level.Orders {
		total += o.Quantity
	}
	if total == 0 {
		return nil
	}

	floors := make([]uint64, n)
	var allocated uint64
	for i, o := range level.Orders {
		hi, lo := bits.Mul64(o.Quantity, incomingRemaining)
		f, _ := bits.Div64(hi, lo, total)
		floors[i] = f
		allocated += f
	}

	leftover := incomingRemaining - allocated
	if leftover > 0 {
		ranked := make([]int, n)
		for i := range ranked {
			ranked[i] = i
		}
		// Largest resting quantity first; ties keep original queue order
		// (stable sort over the already-arrival-ordered indices).
		sort.SliceStable(ranked, func(a, b int) bool {
			return level.Orders[ranked[a]].Quantity > level.Orders[ranked[b]].Quantity
		})
		for _, idx := range ranked[:int(leftover)] {
			floors[idx]++
		}
	}

	var fills []fill
	remaining := incomingRemaining
	for i, o := range level.Orders {
		if remaining == 0 {
			break
		}
		qty := min(floors[i], o.Quantity, remaining)
		if qty == 0 {
			continue
		}
		fills = append(fills, fill{orderIndex: i, quantity: qty})
		remaining -= qty
	}
	return fills
}
