package checkout

import (
	"fmt"
	"net/url"
)

// WhatsAppMessage builds the prefilled negotiation message for a cart the
// gate routed to the alternate channel.
func WhatsAppMessage(result EligibilityResult) string {
	if result.Shortfall != nil {
		s := result.Shortfall
		return fmt.Sprintf(
			"Hello, I would like to place a custom order. I have %d %s in my cart but the minimum order quantity is %d %s.",
			s.Current, s.Unit, s.Required, s.Unit,
		)
	}
	return "Hello, I would like to place a custom order with multiple categories."
}

// WhatsAppLink builds the wa.me deep link carrying the prefilled message.
// Returns empty when the result does not call for the alternate channel or
// no number is configured.
func WhatsAppLink(number string, result EligibilityResult) string {
	if !result.SuggestAlternateChannel || number == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(WhatsAppMessage(result)))
}
