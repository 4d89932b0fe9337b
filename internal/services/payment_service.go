// internal/services/payment_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/shoply/shoply-backend/internal/config"
)

// PaymentService creates Stripe Checkout sessions for the cart. Order
// recording happens separately after the frontend confirms payment success.
type PaymentService struct {
	cfg *config.Config
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &PaymentService{cfg: cfg}
}

type CheckoutItemInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Qty   int     `json:"qty" validate:"required,min=1"`
	Image string  `json:"image"`
}

type CheckoutSessionResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreateCheckoutSession builds a Stripe Checkout session from the submitted
// cart items. Amounts are converted to the smallest currency unit.
func (s *PaymentService) CreateCheckoutSession(items []CheckoutItemInput) (*CheckoutSessionResult, error) {
	if len(items) == 0 {
		return nil, ErrOrderItemsRequired
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.cfg.Payment.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(int64(item.Price * 100)),
			},
			Quantity: stripe.Int64(int64(item.Qty)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(s.cfg.Frontend.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.cfg.Frontend.BaseURL + "/cart"),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	logrus.WithField("session_id", sess.ID).Info("Checkout session created")

	return &CheckoutSessionResult{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}
