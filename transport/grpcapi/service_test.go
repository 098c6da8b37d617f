package grpcapi

import (
	"context"
	"sync"
	"testing"
	"time"

	"matchd/domain"
	"matchd/engine"
	"matchd/transport/matchpb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingPublisher struct {
	mu     sync.Mutex
	trades []domain.Trade
	done   chan struct{}
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{done: make(chan struct{}, 1)}
}

func (p *recordingPublisher) Publish(_ context.Context, trades []domain.Trade) {
	p.mu.Lock()
	p.trades = append(p.trades, trades...)
	p.mu.Unlock()
	p.done <- struct{}{}
}

func (p *recordingPublisher) waitForPublish(t *testing.T) {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publish")
	}
}

func TestSubmitOrderRejectsInvalidSide(t *testing.T) {
	svc := New("AAPL", engine.NewBook(engine.FIFO), nil)

	_, err := svc.SubmitOrder(context.Background(), &matchpb.OrderRequest{
		Side:      "sideways",
		OrderType: "limit",
		Price:     100,
		Quantity:  1,
	})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSubmitOrderRejectsInvalidOrderType(t *testing.T) {
	svc := New("AAPL", engine.NewBook(engine.FIFO), nil)

	_, err := svc.SubmitOrder(context.Background(), &matchpb.OrderRequest{
		Side:      "buy",
		OrderType: "stop",
		Quantity:  1,
	})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSubmitOrderIsCaseInsensitive(t *testing.T) {
	book := engine.NewBook(engine.FIFO)
	svc := New("AAPL", book, nil)

	_, err := svc.SubmitOrder(context.Background(), &matchpb.OrderRequest{
		UserID:    "buyer",
		Side:      "BUY",
		OrderType: "LIMIT",
		Price:     100,
		Quantity:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, book.Bids().Len())
}

func TestSubmitOrderReturnsTradesAndPublishes(t *testing.T) {
	book := engine.NewBook(engine.FIFO)
	pub := newRecordingPublisher()
	svc := New("AAPL", book, pub)

	_, err := svc.SubmitOrder(context.Background(), &matchpb.OrderRequest{
		UserID:    "s1",
		Side:      "sell",
		OrderType: "limit",
		Price:     100,
		Quantity:  10,
	})
	require.NoError(t, err)

	resp, err := svc.SubmitOrder(context.Background(), &matchpb.OrderRequest{
		UserID:    "b1",
		Side:      "buy",
		OrderType: "limit",
		Price:     100,
		Quantity:  10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Trades, 1)
	assert.EqualValues(t, 10, resp.Trades[0].Quantity)
	assert.NotEmpty(t, resp.Trades[0].Timestamp)

	pub.waitForPublish(t)
	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.trades, 1)
	assert.Equal(t, "b1", pub.trades[0].Buyer)
	assert.Equal(t, "s1", pub.trades[0].Seller)
}
