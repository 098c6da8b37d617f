package engine

// fill records how much quantity one resting order in a level contributes
// to the incoming order's match at that level.
type fill struct {
	orderIndex int
	quantity   uint64
}

// fifoFills implements the §4.3 FIFO level allocator: the head resting
// order is consumed first, and an order is only ever partially filled when
// it is the one that exhausts the incoming order's remaining quantity.
// Because orders are walked head-first, that partial fill naturally
// coincides with remaining reaching zero, so no separate "restore at head"
// step is needed.
func fifoFills(level *PriceLevel, incomingRemaining uint64) []fill {
	var fills []fill
	remaining := incomingRemaining
	for i, o := range level.Orders {
		if remaining == 0 {
			break
		}
		qty := min(remaining, o.Quantity)
		if qty == 0 {
			continue
		}
		fills = append(fills, fill{orderIndex: i, quantity: qty})
		remaining -= qty
	}
	return fills
}
