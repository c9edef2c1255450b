package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/oceanlink/bulkcart-backend/internal/cart"
	"github.com/oceanlink/bulkcart-backend/pkg/enums"
	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Customer is the checkout contact form. Field names match the order handoff
// payload consumed by the invoicing service.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type orderPayload struct {
	Customer      Customer    `json:"customer"`
	Items         []cart.Item `json:"items"`
	Subtotal      json.Number `json:"subtotal"`
	Total         json.Number `json:"total"`
	OrderDate     string      `json:"orderDate"`
	PaymentMethod string      `json:"paymentMethod"`
}

// SubmitResult reports the submitted order's computed amounts.
type SubmitResult struct {
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	OrderDate time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service submits eligible carts to the external invoicing endpoint.
type Service struct {
	gate       Gate
	client     httpDoer
	invoiceURL string
	logg       *logger.Logger
	now        func() time.Time
}

// NewService builds the submission service. The client carries the request
// timeout policy.
func NewService(gate Gate, client httpDoer, invoiceURL string, logg *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("http client required")
	}
	if invoiceURL == "" {
		return nil, fmt.Errorf("invoice url required")
	}
	return &Service{
		gate:       gate,
		client:     client,
		invoiceURL: invoiceURL,
		logg:       logg,
		now:        time.Now,
	}, nil
}

// Submit re-checks eligibility, posts the order handoff payload and clears
// the cart. The cart is cleared only after the invoicing service accepts the
// order; any failure leaves it intact so the buyer can retry.
func (s *Service) Submit(ctx context.Context, store *cart.Store, customer Customer, method enums.PaymentMethod) (*SubmitResult, error) {
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	eligibility := s.gate.Evaluate(store.Snapshot())
	if !eligibility.CanProceed {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, eligibility.Message).WithDetails(eligibility)
	}

	total := store.Total()
	orderDate := s.now().UTC()
	payload := orderPayload{
		Customer:      customer,
		Items:         store.Items(),
		Subtotal:      json.Number(money.Display(total)),
		Total:         json.Number(money.Display(total)),
		OrderDate:     orderDate.Format(time.RFC3339),
		PaymentMethod: method.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.invoiceURL, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building invoice request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submitting order")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("invoicing service rejected the order with status %d", resp.StatusCode))
	}

	store.Clear(ctx)
	s.logg.Info(ctx, "order submitted")

	return &SubmitResult{
		Subtotal:  total,
		Total:     total,
		OrderDate: orderDate,
	}, nil
}
