package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"kala-gallery-me/models"
	"kala-gallery-me/ranking"
	"kala-gallery-me/repository"
)

// ErrSuperseded means a newer search was issued while this one was in
// flight; the stale result must be discarded, not applied.
var ErrSuperseded = errors.New("search superseded by a newer request")

// CatalogService orchestrates the collection pages: listing, search with
// filters, filter vocabulary, and the detail view with its two
// recommendation lists.
//
// Overlapping searches follow a last-request-wins policy: issuing a new
// search cancels the previous in-flight one, and a stale response that
// still completes is reported as superseded.
type CatalogService struct {
	repository repository.DesignRepositoryInterface
	ranker     *ranking.Engine

	mu           sync.Mutex
	searchSeq    uint64
	cancelActive context.CancelFunc
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.DesignRepositoryInterface, ranker *ranking.Engine) *CatalogService {
	return &CatalogService{
		repository: repo,
		ranker:     ranker,
	}
}

// GetCollection returns every active design, newest first. Backend
// failures degrade to an empty collection; the error is returned alongside
// for the caller to branch on, never panics.
func (s *CatalogService) GetCollection(ctx context.Context) ([]models.DisplayItem, error) {
	items, err := s.repository.FetchAll(ctx)
	if err != nil {
		log.Printf("⚠️  GetCollection degraded to empty: %v", err)
		return []models.DisplayItem{}, err
	}
	return items, nil
}

// GetFilterVocabulary returns the selectable filter values per category
func (s *CatalogService) GetFilterVocabulary(ctx context.Context) (models.FilterVocabulary, error) {
	vocabulary, err := s.repository.FetchFilterVocabulary(ctx)
	if err != nil {
		log.Printf("⚠️  GetFilterVocabulary degraded to empty: %v", err)
		return models.FilterVocabulary{}, err
	}
	return vocabulary, nil
}

// SearchCollection runs a search under the last-request-wins policy. An
// empty query with an empty selection is the full collection.
func (s *CatalogService) SearchCollection(ctx context.Context, query string, selection models.FilterSelection) ([]models.DisplayItem, error) {
	searchCtx, seq := s.beginSearch(ctx)
	defer s.endSearch(seq)

	var items []models.DisplayItem
	var err error
	if query == "" && selection.IsEmpty() {
		items, err = s.repository.FetchAll(searchCtx)
	} else {
		items, err = s.repository.Search(searchCtx, query, selection)
	}

	if !s.isCurrent(seq) {
		log.Printf("⏭️  Discarding stale search result (query=%q)", query)
		return nil, ErrSuperseded
	}
	if err != nil {
		log.Printf("⚠️  SearchCollection degraded to empty: %v", err)
		return []models.DisplayItem{}, err
	}
	return items, nil
}

// GetDesignDetail returns the detail view for one design: the item itself
// plus the Similar/Other recommendation lists ranked against the rest of
// the active collection. Returns repository.ErrNotFound when no active
// design has the id.
func (s *CatalogService) GetDesignDetail(ctx context.Context, id string) (*models.DesignDetail, error) {
	item, err := s.repository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repository.FetchAll(ctx)
	if err != nil {
		// The item itself loaded; serve it with empty recommendations
		log.Printf("⚠️  Recommendations degraded to empty for %s: %v", id, err)
		return &models.DesignDetail{Item: *item}, nil
	}

	recommendations := s.ranker.Recommend(*item, candidates)
	return &models.DesignDetail{
		Item:    *item,
		Similar: recommendations.Similar,
		Other:   recommendations.Other,
	}, nil
}

// beginSearch registers a new search generation, cancelling the previous
// in-flight search
func (s *CatalogService) beginSearch(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelActive != nil {
		s.cancelActive()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	s.cancelActive = cancel
	s.searchSeq++
	return searchCtx, s.searchSeq
}

// isCurrent reports whether seq is still the newest search generation
func (s *CatalogService) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.searchSeq
}

// endSearch releases the cancel func once the newest search finishes
func (s *CatalogService) endSearch(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.searchSeq && s.cancelActive != nil {
		s.cancelActive()
		s.cancelActive = nil
	}
}
