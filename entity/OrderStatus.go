package entity

// Order lifecycle, in delivery order. New orders always start at
// StatusPending; transitions are driven by the back-office, not validated
// here beyond membership.
const (
	StatusPending        = "Pending"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "OutForDelivery"
	StatusDelivered      = "Delivered"
)

var orderStatuses = []string{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

func ValidOrderStatus(s string) bool {
	for _, v := range orderStatuses {
		if v == s {
			return true
		}
	}
	return false
}
