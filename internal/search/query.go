package search

import (
	"math"
	"strconv"
	"strings"
)

// TextQuery is a free-text catalog search. Nil price bounds mean the
// dimension is unbounded; a zero Limit means no truncation.
type TextQuery struct {
	Q        string
	MinPrice *float64
	MaxPrice *float64
	Ethics   []string
	Limit    int
}

// Piece describes a wardrobe item to find shoppable matches for. A nil field
// is absent; an empty Style or Color string is treated as absent too. A Price
// of 0 is a real target price, not a missing one.
type Piece struct {
	Style       *string  `json:"style,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	EthicsScore *float64 `json:"ethicsScore,omitempty" validate:"omitempty,gte=0,lte=1"`
}

func (p Piece) style() (string, bool) {
	if p.Style == nil || *p.Style == "" {
		return "", false
	}
	return *p.Style, true
}

func (p Piece) color() (string, bool) {
	if p.Color == nil || *p.Color == "" {
		return "", false
	}
	return *p.Color, true
}

// ParseBound parses an optional numeric filter. Search fails open: an empty,
// unparseable or non-finite value yields nil ("no bound") instead of an error.
func ParseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseTags splits a comma-separated tag list, dropping blanks.
func ParseTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// queryWords lowercases q and splits it on whitespace. Fields never yields
// empty words, so nothing shorter than one character survives.
func queryWords(q string) []string {
	return strings.Fields(strings.ToLower(q))
}
