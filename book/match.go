package book

// ProcessOrder matches order against the resting book and, if any
// quantity remains, inserts it. It returns the trade nonce as it stands
// after the call.
//
// A missing price (HasPrice == false) is treated as a market order: a BID
// is synthesized a price that crosses any resting ASK (the top of the
// price range), an ASK a price that crosses any resting BID (one tick).
//
// The buy and sell matching loops are deliberately asymmetric: the buy
// path only matches while its level is strictly greater than askMin, the
// sell path matches while its level is less than *or equal to* bidMax. A
// buy landing exactly on askMin therefore rests instead of matching, while
// a sell landing exactly on bidMax does match. This mirrors the source
// system's behavior bit for bit rather than silently "fixing" it — see
// DESIGN.md.
func (b *Book) ProcessOrder(order *Order) (int64, error) {
	if order.Side != Bid && order.Side != Ask {
		return b.tradeNonce, ErrInvalidSide
	}
	if order.Size <= 0 {
		return b.tradeNonce, ErrInvalidSize
	}

	if !order.HasPrice {
		switch order.Side {
		case Bid:
			order.Price = b.LevelToPrice(b.maxLevel)
		case Ask:
			order.Price = b.tickSize
		}
		order.HasPrice = true
	}

	if order.Side == Bid {
		return b.matchBid(order), nil
	}
	return b.matchAsk(order), nil
}

func (b *Book) matchBid(order *Order) int64 {
	orderLevel := b.PriceToLevel(order.Price)

	for order.Size > 0 && orderLevel > b.askMin {
		lvl, ok := b.levels.Get(b.askMin)
		if !ok || lvl.Ask.Len() == 0 {
			b.askMin++
			continue
		}

		resting, _ := lvl.Ask.Front()
		if resting.Size <= order.Size {
			amount := resting.Size
			order.Size -= amount
			resting.Size = 0
			lvl.Ask.PopFront()
			b.removeFromIndex(resting)
			b.relay(amount, resting)
			b.relay(amount, order)
			continue
		}

		quantity := order.Size
		order.Size = 0
		resting.Size -= quantity
		b.relay(quantity, resting)
		b.relay(quantity, order)
		b.tradeNonce++
		return b.tradeNonce
	}

	if order.Size > 0 {
		lvl := b.levels.GetOrCreate(orderLevel)
		lvl.Bid.PushBack(order)
		if order.ID != "" {
			b.ordersByID[order.ID] = order
		}
		if b.bidMax < orderLevel {
			b.bidMax = orderLevel
		}
	}
	return b.tradeNonce
}

func (b *Book) matchAsk(order *Order) int64 {
	orderLevel := b.PriceToLevel(order.Price)

	for order.Size > 0 && orderLevel <= b.bidMax {
		lvl, ok := b.levels.Get(b.bidMax)
		if !ok || lvl.Bid.Len() == 0 {
			b.bidMax--
			continue
		}

		resting, _ := lvl.Bid.Front()
		if resting.Size <= order.Size {
			amount := resting.Size
			order.Size -= amount
			resting.Size = 0
			lvl.Bid.PopFront()
			b.removeFromIndex(resting)
			b.relay(amount, resting)
			b.relay(amount, order)
			continue
		}

		quantity := order.Size
		order.Size = 0
		resting.Size -= quantity
		b.relay(quantity, resting)
		b.relay(quantity, order)
		b.tradeNonce++
		return b.tradeNonce
	}

	if order.Size > 0 {
		lvl := b.levels.GetOrCreate(orderLevel)
		lvl.Ask.PushBack(order)
		if order.ID != "" {
			b.ordersByID[order.ID] = order
		}
		if b.askMin > orderLevel {
			b.askMin = orderLevel
		}
	}
	return b.tradeNonce
}
