package book

import (
	"fmt"
	"time"
)

// Side is which side of the book an order rests or crosses on.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "BID"
	case Ask:
		return "ASK"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Order is the unit of work the book accepts, mutates in place while it
// rests, and returns copies of on fill relay and view reads.
//
// A submitted Order is owned by the book for its resting lifetime: Size is
// decremented in place by fills. Callers that need the original values
// afterward must keep their own copy before calling ProcessOrder.
type Order struct {
	ID        string // optional; empty disables cancellation.
	Side      Side
	Price     float64 // meaningful only if HasPrice.
	HasPrice  bool    // false means "market" (see ProcessOrder).
	Size      float64 // remaining quantity; mutated in place by fills.
	Timestamp time.Time
	Extra     map[string]string // opaque caller fields carried through fills.
}

// clone returns a value copy of o with Extra deep-copied, so relay
// snapshots and view reads don't alias a resting order's live state.
func (o Order) clone() Order {
	c := o
	if o.Extra != nil {
		c.Extra = make(map[string]string, len(o.Extra))
		for k, v := range o.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

func (o Order) String() string {
	return fmt.Sprintf("Order{ID:%s Side:%s Price:%g Size:%g}", o.ID, o.Side, o.Price, o.Size)
}
