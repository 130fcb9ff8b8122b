package enum

// OrderAction place, cancel
type OrderAction uint8

const (
	_order_action_beg OrderAction = iota
	OrderActionPlaceOrder
	OrderActionCancelOrder
	_order_action_end
)

func (a OrderAction) IsAvailable() bool {
	return a > _order_action_beg && a < _order_action_end
}
