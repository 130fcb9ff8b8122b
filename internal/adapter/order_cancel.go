package adapter

import (
	"math"
	"strconv"
)

// UnsetInt marks an integer field that was intentionally left unspecified.
// It matches the upstream protocol sentinel (2^31-1), so 0 is a real value.
const UnsetInt int32 = math.MaxInt32

// OrderCancel carries the manual-cancel metadata attached to an order
// cancellation. It is a plain value: copy it before sharing across goroutines.
type OrderCancel struct {
	manualOrderCancelTime string
	extOperator           string
	externalUserID        string
	manualOrderIndicator  int32
}

// NewOrderCancel returns an OrderCancel with every field at its default.
func NewOrderCancel() OrderCancel {
	return NewOrderCancelWith("", "", "", UnsetInt)
}

// NewOrderCancelAt returns an OrderCancel with only the manual cancel time set.
func NewOrderCancelAt(cancelTime string) OrderCancel {
	return NewOrderCancelWith(cancelTime, "", "", UnsetInt)
}

// NewOrderCancelWith sets all four fields as given. Nothing is validated.
func NewOrderCancelWith(cancelTime, extOperator, externalUserID string, manualOrderIndicator int32) OrderCancel {
	return OrderCancel{
		manualOrderCancelTime: cancelTime,
		extOperator:           extOperator,
		externalUserID:        externalUserID,
		manualOrderIndicator:  manualOrderIndicator,
	}
}

func (oc OrderCancel) ManualOrderCancelTime() string { return oc.manualOrderCancelTime }
func (oc OrderCancel) ExtOperator() string           { return oc.extOperator }
func (oc OrderCancel) ExternalUserID() string        { return oc.externalUserID }
func (oc OrderCancel) ManualOrderIndicator() int32   { return oc.manualOrderIndicator }

func (oc *OrderCancel) SetManualOrderCancelTime(v string) { oc.manualOrderCancelTime = v }
func (oc *OrderCancel) SetExtOperator(v string)           { oc.extOperator = v }
func (oc *OrderCancel) SetExternalUserID(v string)        { oc.externalUserID = v }
func (oc *OrderCancel) SetManualOrderIndicator(v int32)   { oc.manualOrderIndicator = v }

// HasManualOrderIndicator reports whether the indicator differs from UnsetInt.
func (oc OrderCancel) HasManualOrderIndicator() bool {
	return oc.manualOrderIndicator != UnsetInt
}

// IsDefault reports whether oc equals NewOrderCancel().
func (oc OrderCancel) IsDefault() bool {
	return oc == NewOrderCancel()
}

// Equal accepts OrderCancel or *OrderCancel. Any other type, or a nil
// pointer on one side only, is not equal.
func (oc *OrderCancel) Equal(other any) bool {
	var o *OrderCancel
	switch v := other.(type) {
	case OrderCancel:
		o = &v
	case *OrderCancel:
		if v == oc {
			return true
		}
		o = v
	default:
		return false
	}

	if oc == nil || o == nil {
		return false
	}

	if oc.manualOrderIndicator != o.manualOrderIndicator {
		return false
	}

	return oc.manualOrderCancelTime == o.manualOrderCancelTime &&
		oc.extOperator == o.extOperator &&
		oc.externalUserID == o.externalUserID
}

func (oc OrderCancel) String() string {
	buf := make([]byte, 0, 128)
	buf = append(buf, "OrderCancel{cancelTime="...)
	buf = append(buf, oc.manualOrderCancelTime...)
	buf = append(buf, ", extOperator="...)
	buf = append(buf, oc.extOperator...)
	buf = append(buf, ", externalUserId="...)
	buf = append(buf, oc.externalUserID...)
	buf = append(buf, ", manualOrderIndicator="...)
	if oc.HasManualOrderIndicator() {
		buf = strconv.AppendInt(buf, int64(oc.manualOrderIndicator), 10)
	} else {
		buf = append(buf, "unset"...)
	}
	buf = append(buf, '}')
	return string(buf)
}
