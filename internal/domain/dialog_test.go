package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleEvent = `{
  "messageVersion": "1.0",
  "invocationSource": "FulfillmentCodeHook",
  "inputMode": "Text",
  "sessionId": "123456789012",
  "inputTranscript": "my id is emp001",
  "sessionState": {
    "sessionAttributes": {"lang": "en"},
    "intent": {
      "name": "GetPTOBalanceIntent",
      "state": "ReadyForFulfillment",
      "confirmationState": "None",
      "slots": {
        "employeeId": {"shape": "Scalar", "value": {"originalValue": "emp001", "interpretedValue": "emp001", "resolvedValues": ["emp001"]}},
        "leaveType": null
      }
    }
  },
  "requestAttributes": {"x-amz-lex:channels:platform": "web"}
}`

func decodeEvent(t *testing.T, raw string) DialogEvent {
	t.Helper()
	var ev DialogEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	return ev
}

func TestDialogEvent_Projections(t *testing.T) {
	ev := decodeEvent(t, sampleEvent)
	require.Equal(t, "GetPTOBalanceIntent", ev.IntentName())

	v, ok := ev.SlotValue("employeeId")
	require.True(t, ok)
	require.Equal(t, "emp001", v)

	_, ok = ev.SlotValue("leaveType")
	require.False(t, ok)
	_, ok = ev.SlotValue("missing")
	require.False(t, ok)
}

func TestDialogEvent_SlotValueTrimsAndRejectsBlank(t *testing.T) {
	ev := decodeEvent(t, `{"sessionState":{"intent":{"name":"GetPTOBalanceIntent","slots":{
		"employeeId":{"value":{"interpretedValue":"   "}},
		"padded":{"value":{"interpretedValue":" emp001 "}}
	}}}}`)

	_, ok := ev.SlotValue("employeeId")
	require.False(t, ok)

	v, ok := ev.SlotValue("padded")
	require.True(t, ok)
	require.Equal(t, "emp001", v)
}

func TestDialogEvent_ProjectionsOnEmptyEvent(t *testing.T) {
	ev := decodeEvent(t, `{}`)
	require.Empty(t, ev.IntentName())
	_, ok := ev.SlotValue("employeeId")
	require.False(t, ok)
}

func TestElicitSlot_KeepsSessionAndDoesNotMutateEvent(t *testing.T) {
	ev := decodeEvent(t, sampleEvent)
	resp := ElicitSlot(ev, "employeeId", "who are you?")

	require.Equal(t, DialogActionElicitSlot, resp.Action())
	require.Equal(t, "employeeId", resp.SlotToElicit())
	require.Equal(t, "who are you?", resp.Message())
	require.Equal(t, IntentStateInProgress, resp.SessionState.Intent.State)
	require.Equal(t, "GetPTOBalanceIntent", resp.SessionState.Intent.Name)
	require.Equal(t, map[string]string{"lang": "en"}, resp.SessionState.SessionAttributes)
	require.Equal(t, ev.SessionID, resp.SessionID)
	require.Equal(t, ev.RequestAttributes, resp.RequestAttributes)

	require.Equal(t, "ReadyForFulfillment", ev.SessionState.Intent.State)
	require.Nil(t, ev.SessionState.DialogAction)
}

func TestElicitIntent(t *testing.T) {
	ev := decodeEvent(t, `{"sessionId":"s1","sessionState":{}}`)
	resp := ElicitIntent(ev, "what topic?")

	require.Equal(t, DialogActionElicitIntent, resp.Action())
	require.Empty(t, resp.SlotToElicit())
	require.Equal(t, IntentStateInProgress, resp.SessionState.Intent.State)
	require.Equal(t, "s1", resp.SessionID)
	require.Nil(t, resp.RequestAttributes)
}

func TestClose_ReplacesSessionState(t *testing.T) {
	ev := decodeEvent(t, sampleEvent)
	resp := Close(ev, "done")

	require.Equal(t, DialogActionClose, resp.Action())
	require.Equal(t, &Intent{Name: "GetPTOBalanceIntent", State: IntentStateFulfilled}, resp.SessionState.Intent)
	require.Nil(t, resp.SessionState.SessionAttributes)
	require.Equal(t, []Message{{ContentType: "PlainText", Content: "done"}}, resp.Messages)
}

func TestDialogResponse_WireShape(t *testing.T) {
	resp := Close(decodeEvent(t, `{"sessionId":"s1"}`), "bye")
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"sessionState": {"dialogAction": {"type": "Close"}, "intent": {"name": "UnknownIntent", "state": "Fulfilled"}},
		"messages": [{"contentType": "PlainText", "content": "bye"}],
		"sessionId": "s1",
		"requestAttributes": null
	}`, string(raw))
}
