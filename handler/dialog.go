package handler

import (
	"context"
	"errors"
	"log/slog"

	"hr-assistant/internal/domain"
)

// DialogRouter is satisfied by *usecase.Router.
type DialogRouter interface {
	Route(ctx context.Context, ev domain.DialogEvent) domain.DialogResponse
}

// DialogHandler is the Lambda entry point for bot code hook events.
type DialogHandler struct {
	router DialogRouter
	log    *slog.Logger
}

func NewDialogHandler(router DialogRouter, log *slog.Logger) (*DialogHandler, error) {
	if router == nil {
		return nil, errors.New("handler: dialog router must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &DialogHandler{router: router, log: log}, nil
}

// Handle always returns a response the bot can render; it never returns an
// error to the runtime.
func (h *DialogHandler) Handle(ctx context.Context, ev domain.DialogEvent) (domain.DialogResponse, error) {
	log := h.log.With("sessionId", ev.SessionID, "intent", ev.IntentName())
	log.DebugContext(ctx, "received dialog event",
		"invocationSource", ev.InvocationSource,
		"inputMode", ev.InputMode,
		"transcript", ev.InputTranscript,
	)

	resp := h.router.Route(ctx, ev)

	log.InfoContext(ctx, "dialog turn handled", "action", resp.Action(), "slotToElicit", resp.SlotToElicit())
	return resp, nil
}
