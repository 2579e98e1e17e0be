package ranking

import (
	"sort"
	"strings"

	"kala-gallery-me/models"
)

const (
	// Attribute weights. Design parameters, not derived data: the two
	// aesthetic attributes dominate the two spatial ones.
	weightDesignContext  = 3
	weightSculpturalForm = 3
	weightInteriorArea   = 2
	weightPlacementType  = 2

	// MaxRelated caps each recommendation list on the detail page
	MaxRelated = 8
)

// ScoredItem pairs a candidate with its similarity score against the
// reference item
type ScoredItem struct {
	Item  models.DisplayItem
	Score int
}

// Recommendations holds the two detail-page lists: Similar carries the
// candidates that share at least one weighted tag with the reference,
// Other the rest of the collection in its incoming order.
type Recommendations struct {
	Similar []models.DisplayItem
	Other   []models.DisplayItem
}

// Engine computes weighted tag-overlap similarity between design items
type Engine struct{}

// NewEngine creates a new similarity Engine
func NewEngine() *Engine {
	return &Engine{}
}

// Score computes the weighted similarity of candidate against reference.
// Per attribute it counts how many of the reference's tags have a
// case-insensitive match among the candidate's tags. The count is per
// reference tag: a duplicated reference tag counts each time, a reference
// tag matching several candidate tags counts once.
func (e *Engine) Score(reference, candidate models.DisplayItem) int {
	score := 0
	score += weightDesignContext * matchCount(reference.DesignContextTags, candidate.DesignContextTags)
	score += weightSculpturalForm * matchCount(reference.SculpturalFormTags, candidate.SculpturalFormTags)
	score += weightInteriorArea * matchCount(reference.InteriorAreaTags, candidate.InteriorAreaTags)
	score += weightPlacementType * matchCount(reference.PlacementTypeTags, candidate.PlacementTypeTags)
	return score
}

// Rank scores every candidate against the reference, excluding the
// reference itself. Candidate order is preserved; callers pass the active
// collection in created_at descending order.
func (e *Engine) Rank(reference models.DisplayItem, candidates []models.DisplayItem) []ScoredItem {
	scored := make([]ScoredItem, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}
		scored = append(scored, ScoredItem{
			Item:  candidate,
			Score: e.Score(reference, candidate),
		})
	}
	return scored
}

// Recommend builds the detail-page recommendation lists for reference from
// the active collection. Similar: score > 0, highest first, ties keeping
// the incoming (created_at descending) order, at most MaxRelated. Other:
// every candidate not selected into Similar, in incoming order, at most
// MaxRelated.
func (e *Engine) Recommend(reference models.DisplayItem, candidates []models.DisplayItem) Recommendations {
	scored := e.Rank(reference, candidates)

	var similar []ScoredItem
	for _, s := range scored {
		if s.Score > 0 {
			similar = append(similar, s)
		}
	}

	// Stable: score ties fall back to the incoming order
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Score > similar[j].Score
	})

	if len(similar) > MaxRelated {
		similar = similar[:MaxRelated]
	}

	selected := make(map[string]bool, len(similar))
	recommendations := Recommendations{}
	for _, s := range similar {
		recommendations.Similar = append(recommendations.Similar, s.Item)
		selected[s.Item.ID] = true
	}

	// Truncation overflow from the similar list rejoins the pool here
	for _, s := range scored {
		if selected[s.Item.ID] {
			continue
		}
		recommendations.Other = append(recommendations.Other, s.Item)
		if len(recommendations.Other) == MaxRelated {
			break
		}
	}

	return recommendations
}

// matchCount counts reference tags present in the candidate's tags,
// case-insensitively
func matchCount(referenceTags, candidateTags []string) int {
	if len(referenceTags) == 0 || len(candidateTags) == 0 {
		return 0
	}
	count := 0
	for _, ref := range referenceTags {
		for _, cand := range candidateTags {
			if strings.EqualFold(ref, cand) {
				count++
				break
			}
		}
	}
	return count
}
