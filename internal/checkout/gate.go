// Package checkout decides whether a cart may proceed to order submission
// and performs the submission handoff to the external invoicing service.
//
// Eligibility failures are ordinary results, not errors. An empty cart, a
// mixed-category cart, or a below-minimum cart are expected, frequent states
// the caller branches on; the mixed and below-minimum cases additionally
// route the buyer to a manual negotiation channel.
package checkout

import (
	"fmt"

	"github.com/oceanlink/bulkcart-backend/internal/cart"
	"github.com/oceanlink/bulkcart-backend/pkg/enums"
)

// Shortfall describes how far a single-category cart is from its minimum
// order quantity.
type Shortfall struct {
	Category string `json:"category"`
	Required int    `json:"required"`
	Current  int    `json:"current"`
	Unit     string `json:"unit"`
}

// Remaining is the quantity still needed to reach the minimum.
func (s Shortfall) Remaining() int {
	return s.Required - s.Current
}

// EligibilityResult is the gate's verdict for one cart snapshot.
type EligibilityResult struct {
	CanProceed              bool                    `json:"canProceed"`
	Reason                  enums.EligibilityReason `json:"reasonCode"`
	Message                 string                  `json:"message,omitempty"`
	SuggestAlternateChannel bool                    `json:"suggestAlternateChannel"`
	Shortfall               *Shortfall              `json:"shortfall,omitempty"`
}

// Gate evaluates checkout eligibility. The defaults apply when a line item
// snapshot carries no minimum-order data of its own.
type Gate struct {
	DefaultMOQ     int
	DefaultMOQUnit string
}

// Evaluate applies the eligibility rules in order; the first match wins.
// Pure over the snapshot, safe to call on every request.
func (g Gate) Evaluate(snapshot cart.Snapshot) EligibilityResult {
	if len(snapshot.Items) == 0 {
		return EligibilityResult{
			Reason:  enums.EligibilityReasonEmptyCart,
			Message: "Your cart is empty",
		}
	}

	if len(snapshot.Categories) > 1 {
		return EligibilityResult{
			Reason:                  enums.EligibilityReasonMixedCategories,
			Message:                 "Multiple categories detected.",
			SuggestAlternateChannel: true,
		}
	}

	// A single-category cart shares one MOQ policy, read from the first
	// line's snapshot.
	first := snapshot.Items[0]
	required := first.MOQ
	if required <= 0 {
		required = g.DefaultMOQ
	}
	unit := first.MOQUnit
	if unit == "" {
		unit = g.DefaultMOQUnit
	}

	if snapshot.ItemCount < required {
		shortfall := &Shortfall{
			Category: first.Category,
			Required: required,
			Current:  snapshot.ItemCount,
			Unit:     unit,
		}
		return EligibilityResult{
			Reason: enums.EligibilityReasonBelowMOQ,
			Message: fmt.Sprintf(
				"Minimum order quantity is %d %s. You have %d %s in cart. Please add %d more %s.",
				required, unit, snapshot.ItemCount, unit, shortfall.Remaining(), unit,
			),
			SuggestAlternateChannel: true,
			Shortfall:               shortfall,
		}
	}

	return EligibilityResult{
		CanProceed: true,
		Reason:     enums.EligibilityReasonOK,
	}
}
