// Package relay forwards WebRTC call-control messages between two
// peers identified by user id. It keeps no call state of its own: the
// presence directory resolves addresses and everything else is a
// directed, fire-and-forget send.
package relay

import (
	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/models"
	"github.com/hirehub/interview-signaling/internal/presence"
)

const reasonUserOffline = "User is offline"

type Relay struct {
	dir *presence.Directory
	log *zap.Logger
}

func New(dir *presence.Directory, log *zap.Logger) *Relay {
	return &Relay{dir: dir, log: log}
}

// PlaceCall forwards a call invitation to the callee. If the callee is
// not currently registered the caller — and only the caller — gets a
// call_failed. This is the single relay failure a client ever sees;
// later stages of a call drop silently because the other side being
// gone is a normal race, not an error.
func (r *Relay) PlaceCall(caller presence.Client, p models.CallUserPayload) {
	callee, ok := r.dir.Lookup(p.UserToCall)
	if !ok {
		r.log.Debug("call target offline",
			zap.String("from", p.From),
			zap.String("to", p.UserToCall))
		caller.Send(models.ServerMessage{
			Event: models.EventCallFailed,
			Data:  models.CallFailedPayload{Reason: reasonUserOffline},
		})
		return
	}
	callee.Send(models.ServerMessage{
		Event: models.EventIncomingCall,
		Data: models.IncomingCallPayload{
			Signal:      p.SignalData,
			From:        p.From,
			FromName:    p.FromName,
			CallType:    p.CallType,
			IsAutoMatch: p.IsAutoMatch,
		},
	})
}

// ForwardAnswer delivers the callee's answer signal back to the
// caller. Dropped silently if the caller is gone; they will tear the
// call down on their own.
func (r *Relay) ForwardAnswer(p models.AnswerCallPayload) {
	target, ok := r.dir.Lookup(p.To)
	if !ok {
		return
	}
	target.Send(models.ServerMessage{
		Event: models.EventCallAnswered,
		Data:  p.Signal,
	})
}

// ForwardCandidate relays one ICE candidate. Dropped silently if the
// target is gone.
func (r *Relay) ForwardCandidate(p models.IceCandidatePayload) {
	target, ok := r.dir.Lookup(p.To)
	if !ok {
		return
	}
	target.Send(models.ServerMessage{
		Event: models.EventIceCandidate,
		Data:  p.Candidate,
	})
}

// ForwardHangup tells the other side the call ended. Dropped silently
// if they already disconnected.
func (r *Relay) ForwardHangup(p models.EndCallPayload) {
	target, ok := r.dir.Lookup(p.To)
	if !ok {
		return
	}
	target.Send(models.ServerMessage{Event: models.EventCallEnded})
}
