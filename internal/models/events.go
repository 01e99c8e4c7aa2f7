package models

import "encoding/json"

// CallType distinguishes voice-only from video mock interviews.
type CallType string

const (
	CallTypeVoice CallType = "voice"
	CallTypeVideo CallType = "video"
)

// Valid reports whether the call type is one the server pairs on.
func (t CallType) Valid() bool {
	return t == CallTypeVoice || t == CallTypeVideo
}

// Inbound event names (client → server).
const (
	EventRegisterUser    = "register_user"
	EventCallUser        = "call_user"
	EventAnswerCall      = "answer_call"
	EventIceCandidate    = "ice_candidate"
	EventEndCall         = "end_call"
	EventJoinMatchQueue  = "join_match_queue"
	EventLeaveMatchQueue = "leave_match_queue"
)

// Outbound event names (server → client).
const (
	EventIncomingCall = "incoming_call"
	EventCallAnswered = "call_answered"
	EventCallFailed   = "call_failed"
	EventCallEnded    = "call_ended"
	EventMatchFound   = "match_found"
	EventUserStatus   = "user_status"
)

// ClientMessage is the inbound envelope. Data stays raw until the
// event name tells us which payload to decode.
type ClientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is the outbound envelope.
type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// RegisterUserPayload carries the identity to bind to this connection.
// Clients may also send the user id as a bare JSON string.
type RegisterUserPayload struct {
	UserID string `json:"userId"`
}

// CallUserPayload is the initial call invitation. SignalData is the
// opaque WebRTC offer; the server never inspects it.
type CallUserPayload struct {
	UserToCall  string          `json:"userToCall"`
	SignalData  json.RawMessage `json:"signalData"`
	From        string          `json:"from"`
	FromName    string          `json:"fromName"`
	CallType    CallType        `json:"callType"`
	IsAutoMatch bool            `json:"isAutoMatch"`
}

// IncomingCallPayload is what the callee sees for a CallUserPayload.
type IncomingCallPayload struct {
	Signal      json.RawMessage `json:"signal"`
	From        string          `json:"from"`
	FromName    string          `json:"fromName"`
	CallType    CallType        `json:"callType"`
	IsAutoMatch bool            `json:"isAutoMatch"`
}

// AnswerCallPayload carries the callee's answer back to the caller.
type AnswerCallPayload struct {
	To     string          `json:"to"`
	Signal json.RawMessage `json:"signal"`
}

// IceCandidatePayload relays one ICE candidate either direction.
type IceCandidatePayload struct {
	To        string          `json:"to"`
	Candidate json.RawMessage `json:"candidate"`
}

// EndCallPayload tells the other side the call is over.
type EndCallPayload struct {
	To string `json:"to"`
}

// CallFailedPayload is the only relay failure surfaced to a client.
type CallFailedPayload struct {
	Reason string `json:"reason"`
}

// JoinMatchQueuePayload is a request to be paired with a stranger for
// a mock interview of the given type.
type JoinMatchQueuePayload struct {
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Type   CallType `json:"type"`
}

// MatchFoundPayload notifies one side of a pairing. Exactly one side
// of a match receives IsCaller true and initiates the offer.
type MatchFoundPayload struct {
	PeerID   string   `json:"peerId"`
	PeerName string   `json:"peerName"`
	IsCaller bool     `json:"isCaller"`
	Type     CallType `json:"type"`
}

// UserStatusPayload is the best-effort presence broadcast.
type UserStatusPayload struct {
	UserID string `json:"userId"`
	Status string `json:"status"` // "online" or "offline"
}
