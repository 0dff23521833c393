package response

import "github.com/user/market-dashboard/internal/entity"

type CredentialResponse struct {
	Configured  bool   `json:"configured"`
	MaskedToken string `json:"masked_token,omitempty"`
}

type TestCredentialResponse struct {
	Valid bool `json:"valid"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SearchResponse carries exactly one of Stock or Fund.
type SearchResponse struct {
	Kind  string             `json:"kind"` // "stock" or "fund"
	Stock *entity.StockQuote `json:"stock,omitempty"`
	Fund  *entity.FundQuote  `json:"fund,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
