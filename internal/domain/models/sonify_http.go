package models

import "strings"

// Requests for the sonification HTTP endpoints and the interactive menu.

type NotesRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required_without=Base"`
	Base   string `query:"base" json:"base" validate:"omitempty,alpha,len=3"`
	Target string `query:"target" json:"target" validate:"required_with=Base,omitempty,alpha,len=3"`
	Start  string `query:"start" json:"start" validate:"required,datetime=2006-01-02"`
	End    string `query:"end" json:"end" validate:"required,datetime=2006-01-02"`
}

// Ticker resolves the request to a single price-source symbol.
func (r *NotesRequest) Ticker() string {
	if r.Base != "" {
		return CurrencySymbol(r.Base, r.Target)
	}
	return strings.ToUpper(strings.TrimSpace(r.Symbol))
}

type RenderRequest struct {
	NotesRequest
	Instrument string  `query:"instrument" json:"instrument" default:"piano" validate:"oneof=piano trumpet both"`
	Duration   float64 `query:"duration" json:"duration" default:"0.5" validate:"gte=0.1,lte=2"`
}

// PlaybackRequest is what the menu collects before playing a composition.
type PlaybackRequest struct {
	Instrument string  `default:"piano" validate:"oneof=piano trumpet both"`
	Duration   float64 `default:"0.5" validate:"gte=0.1,lte=2"`
}
