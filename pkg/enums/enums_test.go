package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierKind(t *testing.T) {
	parsed, err := ParseTierKind("quantity")
	require.NoError(t, err)
	require.Equal(t, TierKindQuantity, parsed)
	require.True(t, TierKindWeight.IsValid())

	_, err = ParseTierKind("volume")
	require.Error(t, err)
	require.False(t, TierKind("volume").IsValid())
}

func TestPricingMode(t *testing.T) {
	for _, mode := range []PricingMode{
		PricingModeStandard,
		PricingModeOfferFallback,
		PricingModeTiered,
		PricingModeWeightInformation,
	} {
		parsed, err := ParsePricingMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	_, err := ParsePricingMode("flat")
	require.Error(t, err)
}

func TestEligibilityReason(t *testing.T) {
	parsed, err := ParseEligibilityReason("BELOW_MOQ")
	require.NoError(t, err)
	require.Equal(t, EligibilityReasonBelowMOQ, parsed)

	_, err = ParseEligibilityReason("below_moq")
	require.Error(t, err, "reason codes are case sensitive")
}

func TestPaymentMethod(t *testing.T) {
	parsed, err := ParsePaymentMethod("bank")
	require.NoError(t, err)
	require.Equal(t, PaymentMethodBankTransfer, parsed)

	require.True(t, PaymentMethodCreditCard.IsValid())
	require.False(t, PaymentMethod("paypal").IsValid())
}
