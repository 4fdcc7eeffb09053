package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/kendra/types"
	"github.com/google/uuid"

	"hr-assistant/internal/usecase"
)

const (
	headerCorrelationID = "X-Correlation-Id"
	maxBodyBytes        = 1 << 20

	errQueryRequired  = "Query text is required."
	errInvalidBody    = "Request body must be valid JSON."
	errNotInitialized = "Search client not initialized. Check index configuration and AWS region."
	errMethod         = "Method not allowed."
	errInternal       = "Internal server error."
)

// SearchUseCase is satisfied by *usecase.SearchService.
type SearchUseCase interface {
	Search(ctx context.Context, query string) ([]types.QueryResultItem, error)
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	ResultItems []types.QueryResultItem `json:"ResultItems"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SearchHandler serves POST /search from API Gateway or a local HTTP server.
type SearchHandler struct {
	uc  SearchUseCase
	log *slog.Logger
}

func NewSearchHandler(uc SearchUseCase, log *slog.Logger) (*SearchHandler, error) {
	if uc == nil {
		return nil, errors.New("handler: search use case must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &SearchHandler{uc: uc, log: log}, nil
}

// Handle is the Lambda entry point for API Gateway proxy events.
func (h *SearchHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := correlationID(req.Headers)
	log := h.log.With("correlationId", corrID)

	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, corrID, errorResponse{Error: errMethod}), nil
	}

	body, err := requestBody(req)
	if err != nil {
		log.WarnContext(ctx, "invalid search request body", "err", err)
		return jsonResponse(http.StatusBadRequest, corrID, errorResponse{Error: errInvalidBody}), nil
	}

	var in searchRequest
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &in); err != nil {
			log.WarnContext(ctx, "invalid search request body", "err", err)
			return jsonResponse(http.StatusBadRequest, corrID, errorResponse{Error: errInvalidBody}), nil
		}
	}

	items, err := h.uc.Search(ctx, in.Query)
	if err != nil {
		status, msg := mapSearchError(err)
		log.ErrorContext(ctx, "search failed", "status", status, "code", usecase.CodeOf(err), "err", err)
		return jsonResponse(status, corrID, errorResponse{Error: msg}), nil
	}
	if items == nil {
		items = []types.QueryResultItem{}
	}

	log.InfoContext(ctx, "search completed", "results", len(items))
	return jsonResponse(http.StatusOK, corrID, searchResponse{ResultItems: items}), nil
}

// ServeHTTP adapts Handle to net/http for running outside Lambda.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeResponse(w, jsonResponse(http.StatusBadRequest, correlationID(flattenHeaders(r.Header)), errorResponse{Error: errInvalidBody}))
		return
	}
	resp, _ := h.Handle(r.Context(), events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    flattenHeaders(r.Header),
		Body:       string(buf),
	})
	writeResponse(w, resp)
}

func mapSearchError(err error) (int, string) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return http.StatusInternalServerError, errInternal
	}
	switch ucErr.Code {
	case usecase.ErrorValidation:
		return http.StatusBadRequest, errQueryRequired
	case usecase.ErrorServiceUnavailable:
		return http.StatusInternalServerError, errNotInitialized
	default:
		if ucErr.Err != nil {
			return http.StatusInternalServerError, ucErr.Err.Error()
		}
		return http.StatusInternalServerError, errInternal
	}
}

func requestBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	raw, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, headerCorrelationID) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return uuid.NewString()
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}

func jsonResponse(status int, corrID string, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + errInternal + `"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			headerCorrelationID: corrID,
		},
		Body: string(body),
	}
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
