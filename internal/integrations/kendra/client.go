package kendra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kendra"
	"github.com/aws/aws-sdk-go-v2/service/kendra/types"
)

// ErrIndexNotConfigured is returned by New when no index ID is available.
var ErrIndexNotConfigured = errors.New("kendra: index ID is not configured")

// kendraAPI is the minimal Kendra interface required by Client.
// *kendra.Client from aws-sdk-go-v2 satisfies this interface.
type kendraAPI interface {
	Query(ctx context.Context, in *kendra.QueryInput, optFns ...func(*kendra.Options)) (*kendra.QueryOutput, error)
}

// Client queries a single Kendra index.
type Client struct {
	api     kendraAPI
	indexID string
}

// New binds api to indexID.
func New(api kendraAPI, indexID string) (*Client, error) {
	if api == nil {
		return nil, errors.New("kendra: api must not be nil")
	}
	indexID = strings.TrimSpace(indexID)
	if indexID == "" {
		return nil, ErrIndexNotConfigured
	}
	return &Client{api: api, indexID: indexID}, nil
}

// IndexID returns the index the client queries.
func (c *Client) IndexID() string {
	return c.indexID
}

// Query runs a free-text query and returns the ranked result items as the
// service returned them. A nil slice means no results.
func (c *Client) Query(ctx context.Context, text string) ([]types.QueryResultItem, error) {
	if c.api == nil {
		return nil, errors.New("kendra: client not initialized")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("kendra: query text is required")
	}

	out, err := c.api.Query(ctx, &kendra.QueryInput{
		IndexId:   aws.String(c.indexID),
		QueryText: aws.String(text),
	})
	if err != nil {
		return nil, fmt.Errorf("kendra: query index %q: %w", c.indexID, err)
	}
	if out == nil {
		return nil, nil
	}
	return out.ResultItems, nil
}
