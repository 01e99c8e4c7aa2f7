package handlers

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/matchmaking"
	"github.com/hirehub/interview-signaling/internal/models"
	"github.com/hirehub/interview-signaling/internal/presence"
)

// dispatch routes one inbound frame. Malformed frames are logged and
// dropped; a bad client must never take the session loop down.
func (h *WSHandler) dispatch(c presence.Client, raw []byte) {
	var msg models.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.log.Debug("malformed frame", zap.String("handle", c.ID()), zap.Error(err))
		return
	}

	switch msg.Event {
	case models.EventRegisterUser:
		userID, ok := decodeUserID(msg.Data)
		if !ok {
			h.log.Debug("register_user without user id", zap.String("handle", c.ID()))
			return
		}
		h.dir.Register(userID, c)

	case models.EventCallUser:
		var p models.CallUserPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.UserToCall == "" {
			h.log.Debug("invalid call_user payload", zap.String("handle", c.ID()))
			return
		}
		h.relay.PlaceCall(c, p)

	case models.EventAnswerCall:
		var p models.AnswerCallPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.To == "" {
			h.log.Debug("invalid answer_call payload", zap.String("handle", c.ID()))
			return
		}
		h.relay.ForwardAnswer(p)

	case models.EventIceCandidate:
		var p models.IceCandidatePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.To == "" {
			h.log.Debug("invalid ice_candidate payload", zap.String("handle", c.ID()))
			return
		}
		h.relay.ForwardCandidate(p)

	case models.EventEndCall:
		var p models.EndCallPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.To == "" {
			h.log.Debug("invalid end_call payload", zap.String("handle", c.ID()))
			return
		}
		h.relay.ForwardHangup(p)

	case models.EventJoinMatchQueue:
		var p models.JoinMatchQueuePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.UserID == "" || !p.Type.Valid() {
			h.log.Debug("invalid join_match_queue payload", zap.String("handle", c.ID()))
			return
		}
		h.queue.Join(matchmaking.Entry{
			UserID:   p.UserID,
			Name:     p.Name,
			Skills:   p.Skills,
			CallType: p.Type,
		})

	case models.EventLeaveMatchQueue:
		userID, ok := decodeUserID(msg.Data)
		if !ok {
			h.log.Debug("leave_match_queue without user id", zap.String("handle", c.ID()))
			return
		}
		h.queue.Leave(userID)

	default:
		h.log.Debug("unknown event", zap.String("handle", c.ID()), zap.String("event", msg.Event))
	}
}

// decodeUserID accepts either a bare JSON string or a {userId} object,
// matching what web clients send for register_user and
// leave_match_queue.
func decodeUserID(data json.RawMessage) (string, bool) {
	var userID string
	if err := json.Unmarshal(data, &userID); err == nil && userID != "" {
		return userID, true
	}
	var p models.RegisterUserPayload
	if err := json.Unmarshal(data, &p); err == nil && p.UserID != "" {
		return p.UserID, true
	}
	return "", false
}
