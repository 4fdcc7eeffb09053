package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-assistant/internal/domain"
)

type stubRouter struct {
	in   domain.DialogEvent
	resp domain.DialogResponse
}

func (s *stubRouter) Route(_ context.Context, ev domain.DialogEvent) domain.DialogResponse {
	s.in = ev
	return s.resp
}

func TestNewDialogHandler_ValidatesDependency(t *testing.T) {
	_, err := NewDialogHandler(nil, nil)
	require.Error(t, err)
}

func TestDialogHandle_DelegatesToRouter(t *testing.T) {
	ev := domain.DialogEvent{
		SessionID:         "sess-1",
		RequestAttributes: map[string]string{"a": "b"},
		SessionState:      domain.SessionState{Intent: &domain.Intent{Name: "GetPolicyIntent"}},
	}
	r := &stubRouter{resp: domain.Close(ev, "ok")}
	h, err := NewDialogHandler(r, discardLogger())
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), ev)
	require.NoError(t, err)
	require.Equal(t, ev, r.in)
	require.Equal(t, "ok", resp.Message())
	require.Equal(t, "sess-1", resp.SessionID)
	require.Equal(t, map[string]string{"a": "b"}, resp.RequestAttributes)
}
