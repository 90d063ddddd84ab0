package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/urbanstep/storefront-backend/internal/cart"
)

// Payment methods accepted by the simulated checkout.
const (
	PaymentCredit = "credit"
	PaymentPaypal = "paypal"
)

// StatusConfirmed is the only status a simulated order ever reaches.
const StatusConfirmed = "confirmed"

// Info carries the shipping fields and payment selector of the checkout form.
type Info struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod"`
}

// Validate returns all field errors together, keyed by field name.
func (i Info) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(i.FirstName) == "" {
		errs["firstName"] = "firstName is required"
	}
	if strings.TrimSpace(i.LastName) == "" {
		errs["lastName"] = "lastName is required"
	}
	if strings.TrimSpace(i.Email) == "" || !strings.Contains(i.Email, "@") {
		errs["email"] = "a valid email is required"
	}
	if strings.TrimSpace(i.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(i.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(i.ZipCode) == "" {
		errs["zipCode"] = "zipCode is required"
	}
	if i.PaymentMethod != PaymentCredit && i.PaymentMethod != PaymentPaypal {
		errs["paymentMethod"] = "paymentMethod must be credit or paypal"
	}
	return errs
}

// Order is a placed order: the cart snapshot at checkout time plus shipping
// details. No payment gateway is involved; placement is simulated.
type Order struct {
	ID         string          `json:"orderId"`
	SessionID  string          `json:"-"`
	Items      []cart.Item     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Shipping   Info            `json:"shipping"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
}
