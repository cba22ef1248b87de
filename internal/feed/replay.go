package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"github.com/humdings/limitbook/book"
)

// Event is one line of a newline-delimited JSON event log: either a new
// order or a cancel request. This is the shape the external "streaming
// feed" collaborator in spec.md §1 is expected to translate
// market-data messages into.
type Event struct {
	Type      string  `json:"type"` // "order" or "cancel"
	OrderID   string  `json:"order_id"`
	Side      string  `json:"side,omitempty"`
	Price     float64 `json:"price,omitempty"`
	HasPrice  bool    `json:"has_price,omitempty"`
	Size      float64 `json:"size,omitempty"`
}

// Replayer owns a single goroutine that serializes events from a reader
// onto one Book, matching the "channel/queue into a single consumer task"
// pattern spec.md §5 requires of any caller feeding the engine
// concurrently. It never performs blocking I/O from inside the book's
// fill-relay hook (book.RelayFunc).
type Replayer struct {
	book *book.Book
	r    io.Reader
}

// NewReplayer returns a Replayer that will apply events read from r onto b.
func NewReplayer(r io.Reader, b *book.Book) *Replayer {
	return &Replayer{book: b, r: r}
}

// Run reads and applies events until r is exhausted, ctx is cancelled, or a
// line fails to parse or to apply. It is supervised by a tomb so a caller running it in
// a goroutine gets the same cooperative-shutdown shape as the rest of this
// module's adapters.
func (rp *Replayer) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return rp.consume(ctx)
	})
	return t.Wait()
}

func (rp *Replayer) consume(ctx context.Context) error {
	scanner := bufio.NewScanner(rp.r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return fmt.Errorf("feed: parse event: %w", err)
		}

		if err := rp.apply(&ev); err != nil {
			log.Error().Err(err).Str("type", ev.Type).Str("orderID", ev.OrderID).
				Msg("replay: failed to apply event")
			return err
		}
	}
	return scanner.Err()
}

func (rp *Replayer) apply(ev *Event) error {
	switch ev.Type {
	case "cancel":
		cancelled := rp.book.CancelOrder(ev.OrderID)
		log.Info().Str("orderID", ev.OrderID).Bool("found", cancelled != nil).Msg("replay: cancel")
		return nil

	case "order":
		side, err := sideFromWire(ev.Side)
		if err != nil {
			return err
		}
		id := ev.OrderID
		if id == "" {
			id = uuid.NewString()
		}
		order := &book.Order{
			ID:       id,
			Side:     side,
			Price:    ev.Price,
			HasPrice: ev.HasPrice,
			Size:     ev.Size,
		}
		nonce, err := rp.book.ProcessOrder(order)
		if err != nil {
			return err
		}
		log.Info().Str("orderID", id).Int64("tradeNonce", nonce).Msg("replay: order applied")
		return nil

	default:
		return fmt.Errorf("feed: unrecognized event type %q", ev.Type)
	}
}
