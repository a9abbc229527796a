package models

// Fulfillment statuses. Pending is the creation default; Delivered and
// Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusReady     = "Ready"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Payment statuses. Paid is terminal.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

var validNextStatus = map[string]map[string]bool{
	StatusPending:   {StatusReady: true, StatusCancelled: true},
	StatusReady:     {StatusShipped: true, StatusCancelled: true},
	StatusShipped:   {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ValidStatus(status string) bool {
	_, ok := validNextStatus[status]
	return ok
}

// CanTransition reports whether a fulfillment status change is allowed.
// Unknown statuses never transition anywhere.
func CanTransition(from, to string) bool {
	return validNextStatus[from][to]
}
