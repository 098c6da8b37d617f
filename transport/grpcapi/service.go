// Package grpcapi is the RPC boundary collaborator of §6: it deserializes
// OrderRequest messages, rejects malformed side/order_type values as
// invalid-argument, and is otherwise required to do no further validation
// before handing the order to the matching core. The core's mutation
// happens under bookLock, the external mutual-exclusion primitive §5
// requires around every submit_order call.
package grpcapi

import (
	"context"
	"strings"
	"sync"
	"time"

	"matchd/domain"
	"matchd/engine"
	"matchd/transport/matchpb"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TradePublisher is the fire-and-forget event-log and P&L collaborator of
// §6. Failures there must never affect the RPC response or book state,
// so Publish returns nothing and Service runs it in its own goroutine
// without waiting for it.
type TradePublisher interface {
	Publish(ctx context.Context, trades []domain.Trade)
}

// Service implements matchpb.OrderMatchingServer against a single-symbol
// engine.Book. It owns the book's external mutual-exclusion primitive:
// submit_order is a single-threaded critical section, so every call here
// takes bookLock for the duration of exactly one Book.SubmitOrder call.
type Service struct {
	matchpb.UnimplementedOrderMatchingServer

	symbol    string
	book      *engine.Book
	bookLock  sync.Mutex
	publisher TradePublisher
}

// New constructs a Service backed by book. publisher may be nil, in which
// case trades are not published anywhere beyond the RPC response.
func New(symbol string, book *engine.Book, publisher TradePublisher) *Service {
	return &Service{symbol: symbol, book: book, publisher: publisher}
}

// SubmitOrder parses and validates the request, submits it to the core
// under the book lock, and fires off trade publication without blocking
// the response on it finishing.
func (s *Service) SubmitOrder(ctx context.Context, req *matchpb.OrderRequest) (*matchpb.SubmitResponse, error) {
	side, err := parseSide(req.Side)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	orderType, err := parseOrderType(req.OrderType)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order := &domain.Order{
		ID:        domain.NewOrderID(),
		UserID:    req.UserID,
		Symbol:    s.symbol,
		Side:      side,
		Type:      orderType,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Timestamp: time.Now(),
	}

	s.bookLock.Lock()
	trades := s.book.SubmitOrder(order)
	s.bookLock.Unlock()

	log.Info().
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Str("side", side.String()).
		Str("order_type", orderType.String()).
		Int("trades", len(trades)).
		Msg("order submitted")

	if s.publisher != nil && len(trades) > 0 {
		// Fire-and-forget: publication failures are the publisher's
		// problem and must never be observable here.
		go s.publisher.Publish(context.Background(), trades)
	}

	return &matchpb.SubmitResponse{Trades: toWireTrades(trades)}, nil
}

func parseSide(raw string) (domain.Side, error) {
	switch strings.ToLower(raw) {
	case "buy":
		return domain.Buy, nil
	case "sell":
		return domain.Sell, nil
	default:
		return 0, invalidArgErr("side", raw)
	}
}

func parseOrderType(raw string) (domain.OrderType, error) {
	switch strings.ToLower(raw) {
	case "limit":
		return domain.Limit, nil
	case "market":
		return domain.Market, nil
	default:
		return 0, invalidArgErr("order_type", raw)
	}
}

func invalidArgErr(field, value string) error {
	return &invalidFieldError{field: field, value: value}
}

type invalidFieldError struct {
	field string
	value string
}

func (e *invalidFieldError) Error() string {
	return "invalid " + e.field + ": " + e.value
}

func toWireTrades(trades []domain.Trade) []*matchpb.Trade {
	if len(trades) == 0 {
		return nil
	}
	out := make([]*matchpb.Trade, len(trades))
	for i, t := range trades {
		out[i] = &matchpb.Trade{
			Price:     t.Price,
			Quantity:  t.Quantity,
			Buyer:     t.Buyer,
			Seller:    t.Seller,
			Timestamp: t.Timestamp.Format(time.RFC3339),
		}
	}
	return out
}
