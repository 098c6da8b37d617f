package domain

import "time"

// Trade is an atomic record of quantity exchanged at a single price. It is
// owned by the caller of submit_order once returned; nothing in the book
// aliases back into it.
type Trade struct {
	Price     int64
	Quantity  uint64
	Buyer     string
	Seller    string
	Timestamp time.Time
}
