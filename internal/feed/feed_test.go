package feed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humdings/limitbook/book"
)

func TestLoadSnapshot_SortsByTimestampAndCrosses(t *testing.T) {
	b := book.New(book.WithTickSize(0.01))
	snapshot := `[
		{"order_id": "b", "side": "sell", "price": 100.00, "size": 5, "timestamp": "2026-01-01T00:00:01Z"},
		{"order_id": "a", "side": "buy", "price": 100.00, "size": 5, "timestamp": "2026-01-01T00:00:00Z"}
	]`

	n, err := LoadSnapshot(strings.NewReader(snapshot), b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// "a" (buy) arrived first per timestamp and rests; "b" (sell) crosses
	// it on arrival since a sell at bidMax matches (non-strict <=).
	assert.Nil(t, b.BestBid())
	assert.Nil(t, b.BestAsk())
	require.Len(t, b.Fills(), 2)
}

func TestLoadSnapshot_RejectsUnknownSide(t *testing.T) {
	b := book.New()
	_, err := LoadSnapshot(strings.NewReader(`[{"order_id":"x","side":"???","price":1,"size":1}]`), b)
	assert.Error(t, err)
}

func TestReplayer_AppliesOrderThenCancel(t *testing.T) {
	b := book.New(book.WithTickSize(0.01))
	events := strings.Join([]string{
		`{"type":"order","order_id":"r1","side":"buy","price":10.00,"has_price":true,"size":5}`,
		`{"type":"cancel","order_id":"r1"}`,
	}, "\n")

	rp := NewReplayer(strings.NewReader(events), b)
	err := rp.Run(context.Background())
	require.NoError(t, err)

	assert.Nil(t, b.BestBid())
}

func TestReplayer_PropagatesBadEventType(t *testing.T) {
	b := book.New()
	rp := NewReplayer(strings.NewReader(`{"type":"bogus"}`), b)
	err := rp.Run(context.Background())
	assert.Error(t, err)
}
