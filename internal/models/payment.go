package models

const (
	DefaultCurrency = "usd"
	DefaultPackage  = "unknown"
)

type CreatePaymentIntentRequest struct {
	Amount   *int64 `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
	Package  string `json:"package"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CreateCheckoutSessionRequest struct {
	Package string `json:"package"`
	Email   string `json:"email"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CheckoutSessionResponse struct {
	CheckoutURL string `json:"checkout_url"`
}
