package controllers

import (
	"net/http"
	"time"

	"github.com/oceanlink/bulkcart-backend/api/responses"
	"github.com/oceanlink/bulkcart-backend/api/validators"
	cartsvc "github.com/oceanlink/bulkcart-backend/internal/cart"
	checkoutsvc "github.com/oceanlink/bulkcart-backend/internal/checkout"
	"github.com/oceanlink/bulkcart-backend/pkg/enums"
	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
)

type eligibilityView struct {
	checkoutsvc.EligibilityResult
	WhatsAppLink string `json:"whatsappLink,omitempty"`
}

type submitOrderRequest struct {
	Customer      checkoutsvc.Customer `json:"customer" validate:"required"`
	PaymentMethod string               `json:"paymentMethod" validate:"required,oneof=credit-card bank"`
}

type submitOrderView struct {
	Subtotal  string `json:"subtotal"`
	Total     string `json:"total"`
	OrderDate string `json:"orderDate"`
}

// CheckoutEligibility evaluates the gate over the session's cart and, when
// the cart needs manual negotiation, includes the WhatsApp handoff link.
func CheckoutEligibility(gate checkoutsvc.Gate, whatsAppNumber string, persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := gate.Evaluate(store.Snapshot())
		responses.WriteSuccess(w, eligibilityView{
			EligibilityResult: result,
			WhatsAppLink:      checkoutsvc.WhatsAppLink(whatsAppNumber, result),
		})
	}
}

// CheckoutSubmit validates the customer form, re-checks eligibility and hands
// the order to the invoicing service.
func CheckoutSubmit(svc *checkoutsvc.Service, persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload submitOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown payment method"))
			return
		}

		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), store, payload.Customer, method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, submitOrderView{
			Subtotal:  money.Display(result.Subtotal),
			Total:     money.Display(result.Total),
			OrderDate: result.OrderDate.Format(time.RFC3339),
		})
	}
}
