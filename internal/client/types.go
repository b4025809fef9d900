package client

// ResourceResult is the non-exceptional outcome of a Facility API call. Both
// success and structured client-error statuses are results; the orchestration
// decides what each status means.
type ResourceResult struct {
	Status int
	Data   map[string]any
}

// Created reports whether the result is a 201 Created response.
func (r ResourceResult) Created() bool {
	return r.Status == 201
}

// OK reports whether the result is a 200 OK response.
func (r ResourceResult) OK() bool {
	return r.Status == 200
}

// Currency represents a supported currency from the Ledger API.
type Currency struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsoCode  string `json:"isoCode"`
	Decimals int    `json:"decimals,omitempty"`
}
