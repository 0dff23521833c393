package entity

import "time"

// StockQuote is a quote for a listed stock or a market index. Indices carry
// no market capitalization.
type StockQuote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        int64     `json:"volume"`
	MarketCap     *float64  `json:"marketCap,omitempty"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// FundQuote is the latest NAV of a mutual fund, keyed by ISIN.
type FundQuote struct {
	ISIN          string    `json:"isin"`
	Name          string    `json:"name"`
	AMC           string    `json:"amc"`
	NAV           float64   `json:"nav"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Symbol pairs a ticker with its display name.
type Symbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
