package adapter

import "brokerclient/internal/adapter/enum"

// CancelRequest asks the venue to cancel OrderID. Cancel holds the optional
// manual-cancel metadata and stays at its defaults when none was supplied.
type CancelRequest struct {
	OrderID int64
	Cancel  OrderCancel
}

func NewCancelRequest(orderID int64, cancel OrderCancel) CancelRequest {
	return CancelRequest{
		OrderID: orderID,
		Cancel:  cancel,
	}
}

func (CancelRequest) Action() enum.OrderAction {
	return enum.OrderActionCancelOrder
}

// HasManualMetadata reports whether Cancel differs from its defaults.
func (req CancelRequest) HasManualMetadata() bool {
	return !req.Cancel.IsDefault()
}

func (req CancelRequest) Equal(other CancelRequest) bool {
	return req.OrderID == other.OrderID && req.Cancel.Equal(other.Cancel)
}
