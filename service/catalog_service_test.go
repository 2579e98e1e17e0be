package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kala-gallery-me/models"
	"kala-gallery-me/ranking"
	"kala-gallery-me/repository"
)

// fakeDesignRepository is an in-memory DesignRepositoryInterface for
// service tests
type fakeDesignRepository struct {
	items       []models.DisplayItem
	vocabulary  models.FilterVocabulary
	err         error
	fetchAllErr error

	mu          sync.Mutex
	searchCalls int
	blockSearch chan struct{} // when set, Search waits here or on ctx
}

var _ repository.DesignRepositoryInterface = (*fakeDesignRepository)(nil)

func (f *fakeDesignRepository) FetchAll(ctx context.Context) ([]models.DisplayItem, error) {
	if f.fetchAllErr != nil {
		return nil, f.fetchAllErr
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeDesignRepository) FetchByID(ctx context.Context, id string) (*models.DisplayItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range f.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDesignRepository) FetchFilterVocabulary(ctx context.Context) (models.FilterVocabulary, error) {
	if f.err != nil {
		return models.FilterVocabulary{}, f.err
	}
	return f.vocabulary, nil
}

func (f *fakeDesignRepository) Search(ctx context.Context, query string, selection models.FilterSelection) ([]models.DisplayItem, error) {
	f.mu.Lock()
	f.searchCalls++
	block := f.blockSearch
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeDesignRepository) ExistsByImagePath(ctx context.Context, imagePath string) (bool, error) {
	return false, nil
}

func (f *fakeDesignRepository) Insert(ctx context.Context, record *models.DesignRecord) error {
	return nil
}

func displayItem(id string, designContext []string) models.DisplayItem {
	return models.DisplayItem{ID: id, DesignContextTags: designContext}
}

func TestGetCollectionDegradesToEmpty(t *testing.T) {
	repo := &fakeDesignRepository{err: repository.ErrRepositoryUnavailable}
	svc := NewCatalogService(repo, ranking.NewEngine())

	items, err := svc.GetCollection(context.Background())
	if !errors.Is(err, repository.ErrRepositoryUnavailable) {
		t.Errorf("err = %v, want ErrRepositoryUnavailable", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("degraded collection should be empty non-nil, got %v", items)
	}
}

func TestSearchCollectionEmptyQueryIsFullCollection(t *testing.T) {
	repo := &fakeDesignRepository{items: []models.DisplayItem{
		displayItem("a", nil),
		displayItem("b", nil),
	}}
	svc := NewCatalogService(repo, ranking.NewEngine())

	items, err := svc.SearchCollection(context.Background(), "", models.FilterSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
	if repo.searchCalls != 0 {
		t.Errorf("empty query should not hit Search, got %d calls", repo.searchCalls)
	}
}

func TestSearchCollectionLastRequestWins(t *testing.T) {
	block := make(chan struct{})
	repo := &fakeDesignRepository{
		items:       []models.DisplayItem{displayItem("a", nil)},
		blockSearch: block,
	}
	svc := NewCatalogService(repo, ranking.NewEngine())

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SearchCollection(context.Background(), "stale", models.FilterSelection{DesignContext: []string{"x"}})
		firstDone <- err
	}()

	// Wait for the first search to be in flight
	for {
		repo.mu.Lock()
		started := repo.searchCalls > 0
		repo.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// Second search supersedes the first; stop blocking for it
	repo.mu.Lock()
	repo.blockSearch = nil
	repo.mu.Unlock()

	items, err := svc.SearchCollection(context.Background(), "fresh", models.FilterSelection{DesignContext: []string{"x"}})
	if err != nil {
		t.Fatalf("fresh search failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("fresh search got %d items, want 1", len(items))
	}

	close(block)
	if err := <-firstDone; !errors.Is(err, ErrSuperseded) {
		t.Errorf("stale search err = %v, want ErrSuperseded", err)
	}
}

func TestGetDesignDetailNotFound(t *testing.T) {
	repo := &fakeDesignRepository{items: []models.DisplayItem{displayItem("a", nil)}}
	svc := NewCatalogService(repo, ranking.NewEngine())

	_, err := svc.GetDesignDetail(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetDesignDetailRecommendations(t *testing.T) {
	repo := &fakeDesignRepository{items: []models.DisplayItem{
		displayItem("ref", []string{"Modern"}),
		displayItem("similar", []string{"Modern"}),
		displayItem("other", []string{"Rustic"}),
	}}
	svc := NewCatalogService(repo, ranking.NewEngine())

	detail, err := svc.GetDesignDetail(context.Background(), "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Item.ID != "ref" {
		t.Errorf("Item.ID = %s", detail.Item.ID)
	}
	if len(detail.Similar) != 1 || detail.Similar[0].ID != "similar" {
		t.Errorf("Similar = %v", detail.Similar)
	}
	if len(detail.Other) != 1 || detail.Other[0].ID != "other" {
		t.Errorf("Other = %v", detail.Other)
	}
}

func TestGetDesignDetailDegradedRecommendations(t *testing.T) {
	// The item itself loads but the candidate fetch fails: the detail is
	// still served, with empty recommendation lists
	repo := &fakeDesignRepository{
		items:       []models.DisplayItem{displayItem("ref", nil)},
		fetchAllErr: repository.ErrFetchFailure,
	}
	svc := NewCatalogService(repo, ranking.NewEngine())

	detail, err := svc.GetDesignDetail(context.Background(), "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Item.ID != "ref" {
		t.Errorf("Item.ID = %s", detail.Item.ID)
	}
	if len(detail.Similar) != 0 || len(detail.Other) != 0 {
		t.Errorf("degraded detail should have empty lists, got %d/%d",
			len(detail.Similar), len(detail.Other))
	}
}
