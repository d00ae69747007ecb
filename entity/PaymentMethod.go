package entity

// Closed set of accepted payment methods. Card and InstantTransfer carry
// extra fields in PaymentDetails, Cash carries none.
const (
	PaymentCard            = "Card"
	PaymentInstantTransfer = "InstantTransfer"
	PaymentCash            = "Cash"
)

var paymentMethods = []string{PaymentCard, PaymentInstantTransfer, PaymentCash}

func ValidPaymentMethod(m string) bool {
	for _, v := range paymentMethods {
		if v == m {
			return true
		}
	}
	return false
}
