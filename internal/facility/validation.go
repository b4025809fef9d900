package facility

import (
	"context"
	"fmt"

	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/utils"
	"go.uber.org/zap"
)

// AsyncValidator runs cross-resource validations that need a network round
// trip, before any mutating call is made. A non-empty return value means the
// orchestration must stop without creating anything.
type AsyncValidator interface {
	Validate(ctx context.Context, req *CreateFacilityRequest) ([]string, error)
}

// currencyValidator checks every currency-bearing field of the request against
// the Ledger API's supported currency list.
type currencyValidator struct {
	ledger client.LedgerClient
}

// NewCurrencyValidator creates the currency cross-checking validator.
func NewCurrencyValidator(ledger client.LedgerClient) AsyncValidator {
	return &currencyValidator{ledger: ledger}
}

func (v *currencyValidator) Validate(ctx context.Context, req *CreateFacilityRequest) ([]string, error) {
	currencies, err := v.ledger.GetCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("asynchronous validation: get supported currencies: %w", err)
	}

	supported := make(map[string]struct{}, len(currencies))
	for _, currency := range currencies {
		supported[currency.IsoCode] = struct{}{}
	}

	validationErrors := checkRequestCurrencies(supported, req)
	if len(validationErrors) > 0 {
		utils.WithComponent("currency_validator").Info("Request failed asynchronous validation",
			zap.Int("error_count", len(validationErrors)))
	}
	return validationErrors, nil
}

// checkRequestCurrencies is the pure comparison stage: it walks every
// currency-bearing field in request order and reports the unsupported ones.
func checkRequestCurrencies(supported map[string]struct{}, req *CreateFacilityRequest) []string {
	validationErrors := make([]string, 0)
	validationErrors = append(validationErrors, checkCurrency(supported, "overview", req.Overview.Currency)...)
	for i, fee := range req.FixedFees {
		validationErrors = append(validationErrors, checkCurrency(supported, fmt.Sprintf("fixedFees.%d", i), fee.Currency)...)
	}
	for i, obligation := range req.Obligations {
		validationErrors = append(validationErrors, checkCurrency(supported, fmt.Sprintf("obligations.%d", i), obligation.Currency)...)
	}
	return validationErrors
}

func checkCurrency(supported map[string]struct{}, path, code string) []string {
	if _, ok := supported[code]; !ok {
		return []string{fmt.Sprintf("%s.currency is not supported - %s", path, code)}
	}
	return nil
}
