// Package publish is the event-publication collaborator of §6: for every
// trade the core emits, it appends a record to an external append-only
// stream and adjusts a per-user floating-point running P&L counter. It
// never observes or mutates book state, and any failure here is logged
// and dropped rather than surfaced to the RPC caller, mirroring
// original_source/src/redis_writer.rs's publish_trade / update_user_pnl
// pair.
package publish

import (
	"context"

	"matchd/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TradeStream is the well-known stream name trades are appended to.
const TradeStream = "trades_stream"

// Publisher writes trade events and P&L adjustments to Redis.
// Fire-and-forget: every method swallows its own errors after logging
// them, since a publishing failure must never affect matching.
type Publisher struct {
	client *redis.Client
}

// New wraps an existing Redis client. The caller owns the client's
// lifecycle (construction and Close).
func New(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish appends each trade to TradeStream and adjusts both
// participants' running P&L counters. It is safe to call from any
// goroutine and never blocks the matching core.
func (p *Publisher) Publish(ctx context.Context, trades []domain.Trade) {
	for _, trade := range trades {
		p.publishTrade(ctx, trade)
		p.updateUserPNL(ctx, trade)
	}
}

func (p *Publisher) publishTrade(ctx context.Context, trade domain.Trade) {
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: TradeStream,
		Values: map[string]interface{}{
			"price":     trade.Price,
			"quantity":  trade.Quantity,
			"buyer":     trade.Buyer,
			"seller":    trade.Seller,
			"timestamp": trade.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		},
	}).Result()
	if err != nil {
		log.Error().Err(err).Str("stream", TradeStream).Msg("failed to publish trade")
	}
}

// updateUserPNL decreases the buyer's running P&L by price*quantity and
// increases the seller's by the same amount, matching
// original_source/src/redis_writer.rs's HINCRBYFLOAT pair.
func (p *Publisher) updateUserPNL(ctx context.Context, trade domain.Trade) {
	value := float64(trade.Price) * float64(trade.Quantity)

	buyerKey := "user_pnl:" + trade.Buyer
	if err := p.client.HIncrByFloat(ctx, buyerKey, "pnl", -value).Err(); err != nil {
		log.Error().Err(err).Str("user", trade.Buyer).Msg("failed to update buyer pnl")
	}

	sellerKey := "user_pnl:" + trade.Seller
	if err := p.client.HIncrByFloat(ctx, sellerKey, "pnl", value).Err(); err != nil {
		log.Error().Err(err).Str("user", trade.Seller).Msg("failed to update seller pnl")
	}
}
