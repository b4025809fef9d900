package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ledgerClient handles API interactions with the Ledger API.
// It is intentionally unexported so callers use the LedgerClient interface.
type ledgerClient struct {
	*HTTPClient
	currencyPath string
}

// NewLedgerClient creates a new LedgerClient instance.
func NewLedgerClient(url, username, password, currencyPath string) LedgerClient {
	return &ledgerClient{
		HTTPClient:   NewHTTPClient(url, username, password),
		currencyPath: strings.TrimSuffix(currencyPath, "/"),
	}
}

// GetCurrencies fetches the supported currency list, returning empty on 404.
func (c *ledgerClient) GetCurrencies(ctx context.Context) ([]Currency, error) {
	response, err := c.DoReq(ctx, "GET", c.currencyPath, nil, nil)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return []Currency{}, nil
		}
		return nil, fmt.Errorf("get currencies: %w", err)
	}
	var currencies []Currency
	if err := json.Unmarshal(response.Bytes(), &currencies); err != nil {
		return nil, fmt.Errorf("get currencies: failed to unmarshal response: %w", err)
	}
	return currencies, nil
}

// GetCurrency fetches a single currency by its identifier.
func (c *ledgerClient) GetCurrency(ctx context.Context, id string) (*Currency, error) {
	response, err := c.DoReq(ctx, "GET", fmt.Sprintf("%s/%s", c.currencyPath, id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get currency '%s': %w", id, err)
	}
	var currency Currency
	if err := json.Unmarshal(response.Bytes(), &currency); err != nil {
		return nil, fmt.Errorf("get currency '%s': failed to unmarshal response: %w", id, err)
	}
	return &currency, nil
}
