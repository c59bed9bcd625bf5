// Package search implements catalog text search and style-piece matching.
//
// Every operation is a pure function of the catalog snapshot it is handed and
// the query; the Engine keeps no mutable state, so one value can serve any
// number of concurrent requests.
package search

import (
	"math"
	"sort"
	"strings"

	"oro/internal/models"
)

// DefaultMatchLimit is the number of ranked products a piece match returns.
const DefaultMatchLimit = 6

// Piece-match scoring weights.
const (
	styleTagScore    = 10.0
	styleTitleScore  = 5.0
	colorTitleScore  = 8.0
	ethicsScoreBonus = 5.0
	ethicsThreshold  = 0.7
	priceTolerance   = 0.30 // candidate band, fraction of the target price
	priceBonusMax    = 10.0
	priceBonusDecay  = 20.0 // price units per lost bonus point
)

// Engine ranks catalog products against text queries and style pieces.
type Engine struct {
	synonyms   SynonymTable
	matchLimit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSynonyms replaces the synonym table.
func WithSynonyms(t SynonymTable) Option {
	return func(e *Engine) { e.synonyms = t.Clone() }
}

// WithMatchLimit sets how many products Match returns. Non-positive values
// keep the default.
func WithMatchLimit(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.matchLimit = k
		}
	}
}

// NewEngine creates an Engine with the default synonyms and match limit.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		synonyms:   DefaultSynonyms.Clone(),
		matchLimit: DefaultMatchLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MatchLimit returns the configured top-K.
func (e *Engine) MatchLimit() int { return e.matchLimit }

// Search filters and orders catalog by a text query. Products whose title
// contains a query word come first; catalog order is kept otherwise. The
// result never aliases catalog and is empty, not nil, when nothing matches.
func (e *Engine) Search(catalog []models.Product, q TextQuery) []models.Product {
	words := queryWords(q.Q)

	type hit struct {
		product models.Product
		inTitle bool
	}
	hits := make([]hit, 0, len(catalog))
	for _, p := range catalog {
		if len(words) > 0 && !e.matchesAny(words, corpus(p)) {
			continue
		}
		hits = append(hits, hit{product: p, inTitle: len(words) > 0 && containsAny(strings.ToLower(p.Title), words)})
	}
	if len(words) > 0 {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].inTitle && !hits[j].inTitle
		})
	}

	out := make([]models.Product, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.product)
	}
	out = FilterByPrice(out, q.MinPrice, q.MaxPrice)
	out = FilterByEthics(out, q.Ethics)

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Match returns the catalog products best matching piece, highest score
// first, at most MatchLimit of them. Equal scores keep catalog order.
func (e *Engine) Match(catalog []models.Product, piece Piece) []models.ScoredProduct {
	style, hasStyle := piece.style()
	color, hasColor := piece.color()

	scored := make([]models.ScoredProduct, 0, len(catalog))
	for _, p := range catalog {
		title := strings.ToLower(p.Title)
		if hasStyle && !hasTag(p.Tags, style) && !strings.Contains(title, strings.ToLower(style)) {
			continue
		}
		if hasColor && !strings.Contains(title, strings.ToLower(color)) {
			continue
		}
		if piece.Price != nil && math.Abs(p.Price-*piece.Price) > priceTolerance*(*piece.Price) {
			continue
		}
		scored = append(scored, models.ScoredProduct{Product: p, Score: Score(p, piece)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > e.matchLimit {
		scored = scored[:e.matchLimit]
	}
	return scored
}

// Score computes the additive relevance of p for piece. It does not apply
// the candidate filters; Match does.
func Score(p models.Product, piece Piece) float64 {
	var score float64
	title := strings.ToLower(p.Title)

	if style, ok := piece.style(); ok {
		if hasTag(p.Tags, style) {
			score += styleTagScore
		}
		if strings.Contains(title, strings.ToLower(style)) {
			score += styleTitleScore
		}
	}
	if color, ok := piece.color(); ok && strings.Contains(title, strings.ToLower(color)) {
		score += colorTitleScore
	}
	if piece.EthicsScore != nil && *piece.EthicsScore > ethicsThreshold && len(p.EthicsFlags) > 0 {
		score += ethicsScoreBonus
	}
	if piece.Price != nil {
		diff := math.Abs(p.Price - *piece.Price)
		score += math.Max(0, priceBonusMax-diff/priceBonusDecay)
	}
	return score
}

// FilterByPrice keeps products priced inside the inclusive [min, max] window.
// A nil bound is open.
func FilterByPrice(products []models.Product, min, max *float64) []models.Product {
	if min == nil && max == nil {
		return products
	}
	out := products[:0:0]
	for _, p := range products {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByEthics keeps products carrying at least one of tags. An empty tag
// list filters nothing.
func FilterByEthics(products []models.Product, tags []string) []models.Product {
	if len(tags) == 0 {
		return products
	}
	out := products[:0:0]
	for _, p := range products {
		for _, t := range tags {
			if hasTag(p.EthicsFlags, t) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (e *Engine) matchesAny(words []string, text string) bool {
	for _, w := range words {
		if e.synonyms.Matches(w, text) {
			return true
		}
	}
	return false
}

// corpus is the lowercase text a query word is matched against.
func corpus(p models.Product) string {
	parts := []string{p.Title, strings.Join(p.Tags, " "), p.Category, p.Color, p.Shop}
	return strings.ToLower(strings.Join(parts, " "))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
