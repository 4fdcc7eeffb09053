package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/kendra/types"
)

// Searcher is satisfied by *kendra.Client.
type Searcher interface {
	Query(ctx context.Context, text string) ([]types.QueryResultItem, error)
}

// SearchService relays free-text queries to the document index.
type SearchService struct {
	searcher Searcher
	initErr  error
}

// NewSearchService wraps searcher. initErr records why the searcher could not
// be built at startup; when it is set, or searcher is nil, every Search call
// fails with ErrorServiceUnavailable.
func NewSearchService(searcher Searcher, initErr error) *SearchService {
	if searcher == nil && initErr == nil {
		initErr = errors.New("usecase: searcher must not be nil")
	}
	return &SearchService{searcher: searcher, initErr: initErr}
}

// Available reports whether the service was initialized with a usable searcher.
func (s *SearchService) Available() bool {
	return s.initErr == nil
}

// Search returns the result items for query in ranked order. An empty result
// is not an error.
func (s *SearchService) Search(ctx context.Context, query string) ([]types.QueryResultItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newError(ErrorValidation, "empty_query", nil)
	}
	if s.initErr != nil {
		return nil, newError(ErrorServiceUnavailable, "search_not_initialized", s.initErr)
	}
	items, err := s.searcher.Query(ctx, query)
	if err != nil {
		return nil, newError(ErrorSearch, "search_query_error", err)
	}
	return items, nil
}
