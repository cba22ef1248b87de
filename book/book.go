// Package book implements a single-asset limit order book with a
// price-time priority matching engine: integer price levels, FIFO queues
// per side per level, and two roving cursors (bidMax, askMin) that sweep
// lazily materialized levels during matching.
//
// The book is a library, not a process: it performs no I/O, holds no
// locks, and is not safe for concurrent mutation. A caller that wants to
// feed it from multiple goroutines must serialize calls onto one owning
// executor — see internal/feed for the adapter this module ships with.
package book

import (
	"math"

	"github.com/humdings/limitbook/internal/levelstore"
)

const (
	defaultTickSize = 1e-8
	defaultMaxPrice = 1e9
)

// Fill is one leg of a match: the traded quantity and a deep-copied
// snapshot of the order as it stood immediately after the fill. Every
// matched event produces exactly two Fills, one for the resting order and
// one for the incoming order, in that order.
type Fill struct {
	Size  float64
	Order Order
}

// RelayFunc is the overridable fill-notification hook. It runs
// synchronously on the matching path — implementations must not block
// (publish to a queue instead of doing I/O here).
type RelayFunc func(size float64, snapshot Order)

type level = levelstore.Level[*Order]
type levelQueue = levelstore.Queue[*Order]

// Book is a single-asset limit order book.
type Book struct {
	tickSize float64
	maxPrice float64
	maxLevel int64

	askMin int64 // lowest level an ASK may rest at or above.
	bidMax int64 // highest level a BID may rest at or below.

	levels     *levelstore.Store[*Order]
	ordersByID map[string]*Order

	tradeNonce int64
	fills      []Fill
	relayFill  RelayFunc
}

// Option configures a Book at construction time.
type Option func(*bookConfig)

type bookConfig struct {
	tickSize float64
	maxPrice float64
}

// WithTickSize overrides the default tick size (1e-8).
func WithTickSize(tickSize float64) Option {
	return func(c *bookConfig) { c.tickSize = tickSize }
}

// WithMaxPrice overrides the default price ceiling (1e9) used to derive
// maxLevel.
func WithMaxPrice(maxPrice float64) Option {
	return func(c *bookConfig) { c.maxPrice = maxPrice }
}

// New constructs an empty Book.
func New(opts ...Option) *Book {
	cfg := bookConfig{tickSize: defaultTickSize, maxPrice: defaultMaxPrice}
	for _, opt := range opts {
		opt(&cfg)
	}

	maxLevel := int64(math.Floor(cfg.maxPrice / cfg.tickSize))
	b := &Book{
		tickSize:   cfg.tickSize,
		maxPrice:   cfg.maxPrice,
		maxLevel:   maxLevel,
		askMin:     maxLevel,
		bidMax:     1, // floor(tickSize / tickSize)
		levels:     levelstore.New[*Order](),
		ordersByID: make(map[string]*Order),
	}
	b.relayFill = b.appendFill
	return b
}

// SetRelayFill overrides the fill relay hook. The default appends to the
// fills recorded in Fills().
func (b *Book) SetRelayFill(fn RelayFunc) {
	b.relayFill = fn
}

// Fills returns the fill log recorded by the default relay hook. Callers
// that install their own RelayFunc are responsible for their own log.
func (b *Book) Fills() []Fill { return b.fills }

// TradeNonce returns the current trade nonce. It only advances on the
// partial-fill exit of matching (see ProcessOrder) — it is not a per-fill
// sequence counter.
func (b *Book) TradeNonce() int64 { return b.tradeNonce }

func (b *Book) appendFill(size float64, snapshot Order) {
	b.fills = append(b.fills, Fill{Size: size, Order: snapshot})
}

func (b *Book) relay(size float64, o *Order) {
	b.relayFill(size, o.clone())
}

// PriceToLevel maps a price to its integer level: floor(price / tickSize).
func (b *Book) PriceToLevel(price float64) int64 {
	return int64(math.Floor(price / b.tickSize))
}

// LevelToPrice maps an integer level back to a price: level * tickSize.
func (b *Book) LevelToPrice(level int64) float64 {
	return float64(level) * b.tickSize
}

func (b *Book) removeFromIndex(o *Order) {
	if o.ID != "" {
		delete(b.ordersByID, o.ID)
	}
}
