package book

// CancelOrder removes a resting order by ID. Missing IDs, double cancels,
// and cancels that race a fill are all silent no-ops (per the source
// design, not an error): CancelOrder returns nil in every case where
// there's nothing left to cancel.
//
// On success it returns the order with Size zeroed out. No fill is
// relayed for a cancel.
func (b *Book) CancelOrder(id string) *Order {
	order, ok := b.ordersByID[id]
	if !ok {
		return nil
	}
	delete(b.ordersByID, id)

	if lvl, ok := b.levels.Get(b.PriceToLevel(order.Price)); ok {
		switch order.Side {
		case Bid:
			lvl.Bid.Remove(order)
		case Ask:
			lvl.Ask.Remove(order)
		}
	}
	order.Size = 0
	return order
}
