package domain

import "strings"

// DialogActionType is the next step the bot should take after a code hook.
type DialogActionType string

const (
	DialogActionElicitSlot   DialogActionType = "ElicitSlot"
	DialogActionElicitIntent DialogActionType = "ElicitIntent"
	DialogActionClose        DialogActionType = "Close"
)

const (
	IntentStateInProgress = "InProgress"
	IntentStateFulfilled  = "Fulfilled"

	unknownIntentName = "UnknownIntent"
	contentTypePlain  = "PlainText"
)

// DialogEvent is the code hook input sent by the conversational bot for a
// single turn.
type DialogEvent struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  string            `json:"invocationSource,omitempty"`
	InputMode         string            `json:"inputMode,omitempty"`
	SessionID         string            `json:"sessionId"`
	InputTranscript   string            `json:"inputTranscript"`
	SessionState      SessionState      `json:"sessionState"`
	RequestAttributes map[string]string `json:"requestAttributes"`
}

type SessionState struct {
	DialogAction         *DialogAction     `json:"dialogAction,omitempty"`
	Intent               *Intent           `json:"intent,omitempty"`
	SessionAttributes    map[string]string `json:"sessionAttributes,omitempty"`
	OriginatingRequestID string            `json:"originatingRequestId,omitempty"`
}

type DialogAction struct {
	Type         DialogActionType `json:"type"`
	SlotToElicit string           `json:"slotToElicit,omitempty"`
}

type Intent struct {
	Name              string           `json:"name"`
	Slots             map[string]*Slot `json:"slots,omitempty"`
	State             string           `json:"state,omitempty"`
	ConfirmationState string           `json:"confirmationState,omitempty"`
}

// Slot is nil in the event when the user has not supplied it yet.
type Slot struct {
	Shape string     `json:"shape,omitempty"`
	Value *SlotValue `json:"value,omitempty"`
}

type SlotValue struct {
	OriginalValue    string   `json:"originalValue,omitempty"`
	InterpretedValue string   `json:"interpretedValue,omitempty"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

// IntentName returns the recognised intent name, or "" when the event has none.
func (e DialogEvent) IntentName() string {
	if e.SessionState.Intent == nil {
		return ""
	}
	return e.SessionState.Intent.Name
}

// SlotValue returns the trimmed interpreted value of the named slot. ok is
// false when the slot is absent or its interpreted value is blank.
func (e DialogEvent) SlotValue(name string) (string, bool) {
	intent := e.SessionState.Intent
	if intent == nil {
		return "", false
	}
	slot := intent.Slots[name]
	if slot == nil || slot.Value == nil {
		return "", false
	}
	v := strings.TrimSpace(slot.Value.InterpretedValue)
	if v == "" {
		return "", false
	}
	return v, true
}

// Message is a single bot utterance returned to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// DialogResponse is the code hook reply. Build it with ElicitSlot,
// ElicitIntent or Close so the session identity is always carried over.
type DialogResponse struct {
	SessionState      SessionState      `json:"sessionState"`
	Messages          []Message         `json:"messages"`
	SessionID         string            `json:"sessionId"`
	RequestAttributes map[string]string `json:"requestAttributes"`
}

// Action returns the dialog action type of the response.
func (r DialogResponse) Action() DialogActionType {
	if r.SessionState.DialogAction == nil {
		return ""
	}
	return r.SessionState.DialogAction.Type
}

// SlotToElicit returns the slot the response asks for, if any.
func (r DialogResponse) SlotToElicit() string {
	if r.SessionState.DialogAction == nil {
		return ""
	}
	return r.SessionState.DialogAction.SlotToElicit
}

// Message returns the content of the first message, or "".
func (r DialogResponse) Message() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].Content
}

// ElicitSlot asks the user for slot, keeping the current session state.
func ElicitSlot(ev DialogEvent, slot, message string) DialogResponse {
	state := inProgressState(ev.SessionState)
	state.DialogAction = &DialogAction{Type: DialogActionElicitSlot, SlotToElicit: slot}
	return respond(ev, state, message)
}

// ElicitIntent asks the user to restate what they want, keeping the current
// session state.
func ElicitIntent(ev DialogEvent, message string) DialogResponse {
	state := inProgressState(ev.SessionState)
	state.DialogAction = &DialogAction{Type: DialogActionElicitIntent}
	return respond(ev, state, message)
}

// Close ends the turn and marks the intent fulfilled.
func Close(ev DialogEvent, message string) DialogResponse {
	name := ev.IntentName()
	if name == "" {
		name = unknownIntentName
	}
	state := SessionState{
		DialogAction: &DialogAction{Type: DialogActionClose},
		Intent:       &Intent{Name: name, State: IntentStateFulfilled},
	}
	return respond(ev, state, message)
}

// inProgressState copies state so the caller's event is never mutated.
func inProgressState(state SessionState) SessionState {
	out := state
	intent := Intent{}
	if state.Intent != nil {
		intent = *state.Intent
	}
	intent.State = IntentStateInProgress
	out.Intent = &intent
	return out
}

func respond(ev DialogEvent, state SessionState, message string) DialogResponse {
	return DialogResponse{
		SessionState:      state,
		Messages:          []Message{{ContentType: contentTypePlain, Content: message}},
		SessionID:         ev.SessionID,
		RequestAttributes: ev.RequestAttributes,
	}
}
