// Package feed holds the thin, out-of-core-scope adapters around the book
// engine: a REST-snapshot loader and a single-goroutine replay feed. Both
// are translations of an external payload shape into book.Order values —
// no matching logic lives here.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/humdings/limitbook/book"
)

// SnapshotRow is one row of a REST order-book snapshot, the shape
// original_source/crypto_hub's coinexchange.io adapter pulls off
// getorderbook and turns into book.Order values.
type SnapshotRow struct {
	OrderID   string    `json:"order_id"`
	Side      string    `json:"side"` // "buy" or "sell"
	Price     float64   `json:"price"`
	Size      float64   `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

// sideFromWire translates the ecosystem-specific "buy"/"sell" label the
// wire payload carries into the engine's Side enum, per spec.md §6.
func sideFromWire(s string) (book.Side, error) {
	switch s {
	case "buy", "bid", "BUY", "BID":
		return book.Bid, nil
	case "sell", "ask", "SELL", "ASK":
		return book.Ask, nil
	default:
		return 0, fmt.Errorf("feed: unrecognized side %q", s)
	}
}

// LoadSnapshot decodes a JSON array of SnapshotRow from r, sorts it by
// arrival timestamp (ascending, the order the book expects a batch to be
// fed in), and submits each row to b via ProcessOrder. It returns the
// number of rows successfully processed.
//
// r is caller-supplied (an HTTP response body, a file, a fixture) — this
// function performs no network I/O itself.
func LoadSnapshot(r io.Reader, b *book.Book) (int, error) {
	var rows []SnapshotRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return 0, fmt.Errorf("feed: decode snapshot: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	n := 0
	for _, row := range rows {
		side, err := sideFromWire(row.Side)
		if err != nil {
			return n, err
		}

		orderID := row.OrderID
		if orderID == "" {
			orderID = uuid.NewString()
		}

		order := &book.Order{
			ID:        orderID,
			Side:      side,
			Price:     row.Price,
			HasPrice:  row.Price > 0,
			Size:      row.Size,
			Timestamp: row.Timestamp,
		}
		if _, err := b.ProcessOrder(order); err != nil {
			return n, fmt.Errorf("feed: row %s: %w", orderID, err)
		}
		n++
	}
	return n, nil
}
