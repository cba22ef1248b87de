package book

import "math"

// BestBid returns a copy of the highest resting BID, or nil if the book
// has no bids. Walking past empty levels compacts bidMax toward reality as
// a side effect, per the cursor's lazy-skip design.
func (b *Book) BestBid() *Order {
	for b.bidMax >= 1 {
		if lvl, ok := b.levels.Get(b.bidMax); ok {
			if front, ok := lvl.Bid.Front(); ok {
				cpy := front.clone()
				return &cpy
			}
		}
		b.bidMax--
	}
	return nil
}

// BestAsk returns a copy of the lowest resting ASK, or nil if the book has
// no asks. Walking past empty levels compacts askMin toward reality.
func (b *Book) BestAsk() *Order {
	// Only materialized levels can hold an ask, so the walk visits those
	// in ascending order instead of stepping through every level up to
	// maxLevel one at a time.
	var best *Order
	b.levels.Ascend(func(lvl *level) bool {
		if lvl.Level > b.maxLevel {
			return false
		}
		if lvl.Level < b.askMin {
			return true
		}
		if front, ok := lvl.Ask.Front(); ok {
			cpy := front.clone()
			best = &cpy
			b.askMin = lvl.Level
			return false
		}
		return true
	})
	if best == nil && b.askMin <= b.maxLevel {
		b.askMin = b.maxLevel + 1
	}
	return best
}

// LevelDepth is one row of a depth or cumulative-depth frame. A size of
// NaN means "missing" — the level has no resting size on that side.
type LevelDepth struct {
	Level    int64
	Price    float64
	BidSize  float64
	AskSize  float64
}

// Depth returns, for every materialized level in ascending price order,
// the total resting bid and ask size. Zero or negative totals are
// reported as NaN rather than 0, matching the source's "missing" frame
// convention.
func (b *Book) Depth() []LevelDepth {
	var out []LevelDepth
	b.levels.Ascend(func(lvl *level) bool {
		out = append(out, LevelDepth{
			Level:   lvl.Level,
			Price:   b.LevelToPrice(lvl.Level),
			BidSize: missingIfNotPositive(sumSizes(lvl.Bid)),
			AskSize: missingIfNotPositive(sumSizes(lvl.Ask)),
		})
		return true
	})
	return out
}

// CumulativeDepth returns a depth frame where the bid column is a
// descending-price cumulative sum (each level aggregates every bid at or
// above it, so the deepest level carries the whole bid side's total) and
// the ask column is an ascending-price cumulative sum (each level
// aggregates every ask at or below it, starting from best ask outward).
func (b *Book) CumulativeDepth() []LevelDepth {
	depth := b.Depth()
	out := make([]LevelDepth, len(depth))
	for i, d := range depth {
		out[i] = LevelDepth{Level: d.Level, Price: d.Price}
	}

	var askCum float64
	for i, d := range depth {
		if !math.IsNaN(d.AskSize) {
			askCum += d.AskSize
		}
		out[i].AskSize = missingIfNotPositive(askCum)
	}

	var bidCum float64
	for i := len(depth) - 1; i >= 0; i-- {
		if !math.IsNaN(depth[i].BidSize) {
			bidCum += depth[i].BidSize
		}
		out[i].BidSize = missingIfNotPositive(bidCum)
	}

	return out
}

func missingIfNotPositive(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return v
}

func sumSizes(q *levelQueue) float64 {
	var total float64
	q.ForEach(func(o *Order) { total += o.Size })
	return total
}
