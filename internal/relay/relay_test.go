package relay

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/models"
	"github.com/hirehub/interview-signaling/internal/presence"
)

type fakeClient struct {
	id   string
	msgs []models.ServerMessage
}

func (c *fakeClient) ID() string                    { return c.id }
func (c *fakeClient) Send(msg models.ServerMessage) { c.msgs = append(c.msgs, msg) }

// callEvents drops the user_status noise the directory generates on
// registration.
func (c *fakeClient) callEvents() []models.ServerMessage {
	var out []models.ServerMessage
	for _, m := range c.msgs {
		if m.Event != models.EventUserStatus {
			out = append(out, m)
		}
	}
	return out
}

func newTestRelay() (*Relay, *presence.Directory) {
	dir := presence.NewDirectory(nil, zap.NewNop())
	return New(dir, zap.NewNop()), dir
}

func TestPlaceCallForwardsInvitation(t *testing.T) {
	r, dir := newTestRelay()

	caller := &fakeClient{id: "h1"}
	callee := &fakeClient{id: "h2"}
	dir.Register("alice", caller)
	dir.Register("bob", callee)

	offer := json.RawMessage(`{"type":"offer","sdp":"v=0"}`)
	r.PlaceCall(caller, models.CallUserPayload{
		UserToCall:  "bob",
		SignalData:  offer,
		From:        "alice",
		FromName:    "Alice",
		CallType:    models.CallTypeVideo,
		IsAutoMatch: true,
	})

	events := callee.callEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 call event for callee, got %d", len(events))
	}
	if events[0].Event != models.EventIncomingCall {
		t.Fatalf("expected incoming_call, got %s", events[0].Event)
	}
	p := events[0].Data.(models.IncomingCallPayload)
	if p.From != "alice" || p.FromName != "Alice" || p.CallType != models.CallTypeVideo || !p.IsAutoMatch {
		t.Fatalf("invitation fields mangled: %+v", p)
	}
	if string(p.Signal) != string(offer) {
		t.Fatal("offer signal not forwarded verbatim")
	}
	if got := caller.callEvents(); len(got) != 0 {
		t.Fatalf("caller must receive nothing on success, got %v", got)
	}
}

func TestPlaceCallOfflineTarget(t *testing.T) {
	r, dir := newTestRelay()

	caller := &fakeClient{id: "h1"}
	bystander := &fakeClient{id: "h2"}
	dir.Register("alice", caller)
	dir.Register("carol", bystander)

	r.PlaceCall(caller, models.CallUserPayload{UserToCall: "ghost", From: "alice"})

	events := caller.callEvents()
	if len(events) != 1 || events[0].Event != models.EventCallFailed {
		t.Fatalf("expected exactly one call_failed for caller, got %v", events)
	}
	if reason := events[0].Data.(models.CallFailedPayload).Reason; reason != "User is offline" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if got := bystander.callEvents(); len(got) != 0 {
		t.Fatalf("bystander must receive nothing, got %v", got)
	}
}

func TestForwardAnswer(t *testing.T) {
	r, dir := newTestRelay()

	caller := &fakeClient{id: "h1"}
	dir.Register("alice", caller)

	answer := json.RawMessage(`{"type":"answer"}`)
	r.ForwardAnswer(models.AnswerCallPayload{To: "alice", Signal: answer})

	events := caller.callEvents()
	if len(events) != 1 || events[0].Event != models.EventCallAnswered {
		t.Fatalf("expected call_answered, got %v", events)
	}
	if string(events[0].Data.(json.RawMessage)) != string(answer) {
		t.Fatal("answer signal not forwarded verbatim")
	}

	// Absent target drops silently.
	r.ForwardAnswer(models.AnswerCallPayload{To: "ghost", Signal: answer})
}

func TestForwardCandidate(t *testing.T) {
	r, dir := newTestRelay()

	peer := &fakeClient{id: "h1"}
	dir.Register("bob", peer)

	cand := json.RawMessage(`{"candidate":"candidate:1"}`)
	r.ForwardCandidate(models.IceCandidatePayload{To: "bob", Candidate: cand})

	events := peer.callEvents()
	if len(events) != 1 || events[0].Event != models.EventIceCandidate {
		t.Fatalf("expected ice_candidate, got %v", events)
	}

	r.ForwardCandidate(models.IceCandidatePayload{To: "ghost", Candidate: cand})
}

func TestForwardHangup(t *testing.T) {
	r, dir := newTestRelay()

	peer := &fakeClient{id: "h1"}
	dir.Register("bob", peer)

	r.ForwardHangup(models.EndCallPayload{To: "bob"})

	events := peer.callEvents()
	if len(events) != 1 || events[0].Event != models.EventCallEnded {
		t.Fatalf("expected call_ended, got %v", events)
	}
	if events[0].Data != nil {
		t.Fatal("call_ended carries no payload")
	}

	r.ForwardHangup(models.EndCallPayload{To: "ghost"})
}
