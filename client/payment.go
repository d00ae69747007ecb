package client

// PaymentDetails is the wire shape of the recorded payment info; only the
// fields of the chosen method are sent.
type PaymentDetails struct {
	CardHolder string `json:"cardHolder,omitempty"`
	CardLast4  string `json:"cardLast4,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"`
	BizumPhone string `json:"bizumPhone,omitempty"`
}

// Payment is the tagged union over the three accepted methods. Each variant
// knows its wire name and which details (if any) go on the payload, so the
// checkout flow never guesses at optional fields.
type Payment interface {
	Method() string
	Details() *PaymentDetails
}

// CardPayment records the card; only the last 4 digits ever leave the
// client, nothing is charged.
type CardPayment struct {
	Holder string
	Number string
	Expiry string
}

func (p CardPayment) Method() string { return "Card" }

func (p CardPayment) Details() *PaymentDetails {
	last4 := p.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return &PaymentDetails{
		CardHolder: p.Holder,
		CardLast4:  last4,
		CardExpiry: p.Expiry,
	}
}

// BizumPayment is the instant-transfer variant, identified by phone number.
type BizumPayment struct {
	Phone string
}

func (p BizumPayment) Method() string { return "InstantTransfer" }

func (p BizumPayment) Details() *PaymentDetails {
	return &PaymentDetails{BizumPhone: p.Phone}
}

// CashPayment carries no details; the payload omits them entirely.
type CashPayment struct{}

func (p CashPayment) Method() string { return "Cash" }

func (p CashPayment) Details() *PaymentDetails { return nil }
