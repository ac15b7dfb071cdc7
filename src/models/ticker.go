package models

import "fmt"

// -----------------------------------------------------------------------------
// Ticker is a closed enumeration of watchlist symbols.
// The watchlist is fixed at compile time; arbitrary symbols are rejected.
// -----------------------------------------------------------------------------

type Ticker string

const (
	TickerAAPL Ticker = "AAPL"
	TickerMSFT Ticker = "MSFT"
	TickerGOOG Ticker = "GOOG"
	TickerAMZN Ticker = "AMZN"
	TickerNVDA Ticker = "NVDA"
	TickerMETA Ticker = "META"
	TickerTSLA Ticker = "TSLA"
	TickerGD   Ticker = "GD"
	TickerCRWV Ticker = "CRWV"
	TickerJPM  Ticker = "JPM"
	TickerV    Ticker = "V"
	TickerKO   Ticker = "KO"
	TickerXOM  Ticker = "XOM"
	TickerBA   Ticker = "BA"
	TickerDIS  Ticker = "DIS"
)

// allTickers keeps the display order of the watchlist.
var allTickers = []Ticker{
	TickerAAPL, TickerMSFT, TickerGOOG, TickerAMZN, TickerNVDA,
	TickerMETA, TickerTSLA, TickerGD, TickerCRWV, TickerJPM,
	TickerV, TickerKO, TickerXOM, TickerBA, TickerDIS,
}

var tickerSet = func() map[Ticker]struct{} {
	m := make(map[Ticker]struct{}, len(allTickers))
	for _, t := range allTickers {
		m[t] = struct{}{}
	}
	return m
}()

// -----------------------------------------------------------------------------

// AllTickers returns the watchlist in display order. The returned slice is a
// copy; callers may reorder it freely.
func AllTickers() []Ticker {
	out := make([]Ticker, len(allTickers))
	copy(out, allTickers)
	return out
}

// -----------------------------------------------------------------------------

// ParseTicker validates a raw symbol against the watchlist.
func ParseTicker(symbol string) (Ticker, error) {
	t := Ticker(symbol)
	if _, ok := tickerSet[t]; !ok {
		return "", fmt.Errorf("unknown ticker %q", symbol)
	}
	return t, nil
}

// -----------------------------------------------------------------------------

func (t Ticker) String() string {
	return string(t)
}
