package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCard is returned when the submitted card details fail the
	// required-field and format checks. No charge is ever attempted.
	ErrInvalidCard = errors.New("invalid card details")

	// ErrTooManyAttempts is returned when a user submits checkouts faster
	// than the double-submit guard allows.
	ErrTooManyAttempts = errors.New("too many checkout attempts")
)

// CardDetails is the mocked payment form. Nothing here is stored or sent
// anywhere; it exists only to be validated.
type CardDetails struct {
	NameOnCard string `json:"name_on_card"`
	Number     string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// Order is the receipt recorded when a mocked checkout completes.
type Order struct {
	PublicID  string    `json:"public_id"`
	UserID    string    `json:"-"`
	Amount    float64   `json:"amount"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}
