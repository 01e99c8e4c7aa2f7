// Package matchmaking pairs anonymous peers waiting for a mock
// interview of the same call type. The pool is a single ordered list;
// one mutex serializes join/leave so the scan-then-remove pairing
// step can never race against a concurrent joiner.
package matchmaking

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/models"
	"github.com/hirehub/interview-signaling/internal/presence"
)

// Entry is one waiting user. The connection handle is deliberately not
// stored here: it is resolved through the presence directory at match
// time, so a reconnect between joining and matching still reaches the
// user's current connection.
type Entry struct {
	UserID   string
	Name     string
	Skills   []string
	CallType models.CallType
}

type Queue struct {
	mu      sync.Mutex
	entries []Entry

	dir     *presence.Directory
	matcher Matcher
	log     *zap.Logger
}

func NewQueue(dir *presence.Directory, matcher Matcher, log *zap.Logger) *Queue {
	return &Queue{dir: dir, matcher: matcher, log: log}
}

// Join pairs the candidate with a waiting peer or enqueues them.
//
// A prior entry for the same user is dropped first, so rejoining
// replaces rather than duplicates. When the matcher finds a partner,
// both entries leave the pool and each side gets a match_found; the
// joiner is always the caller so exactly one side initiates the WebRTC
// offer. A side whose connection vanished in the race window between
// pairing and lookup is silently skipped — no retry, the survivor's
// client rejoins on its own timeout.
func (q *Queue) Join(candidate Entry) {
	q.mu.Lock()
	q.removeLocked(candidate.UserID)

	idx := q.matcher.FindMatch(q.entries, candidate)
	if idx < 0 {
		q.entries = append(q.entries, candidate)
		waiting := len(q.entries)
		q.mu.Unlock()
		q.log.Info("queued for matchmaking",
			zap.String("user_id", candidate.UserID),
			zap.String("call_type", string(candidate.CallType)),
			zap.Int("waiting", waiting))
		return
	}

	peer := q.entries[idx]
	q.entries = append(q.entries[:idx], q.entries[idx+1:]...)
	q.mu.Unlock()

	q.log.Info("match made",
		zap.String("caller", candidate.UserID),
		zap.String("callee", peer.UserID),
		zap.String("call_type", string(candidate.CallType)),
		zap.Float64("skill_overlap", SkillMatchScore(candidate.Skills, peer.Skills)))

	q.notify(candidate.UserID, models.MatchFoundPayload{
		PeerID:   peer.UserID,
		PeerName: peer.Name,
		IsCaller: true,
		Type:     candidate.CallType,
	})
	q.notify(peer.UserID, models.MatchFoundPayload{
		PeerID:   candidate.UserID,
		PeerName: candidate.Name,
		IsCaller: false,
		Type:     candidate.CallType,
	})
}

// Leave removes any waiting entry for userID. Calling it for a user
// who is not queued is a no-op. The websocket session also calls this
// on disconnect, right after unregistering presence.
func (q *Queue) Leave(userID string) {
	q.mu.Lock()
	q.removeLocked(userID)
	q.mu.Unlock()
}

// Len reports how many users are currently waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *Queue) removeLocked(userID string) {
	for i, e := range q.entries {
		if e.UserID == userID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

func (q *Queue) notify(userID string, payload models.MatchFoundPayload) {
	c, ok := q.dir.Lookup(userID)
	if !ok {
		q.log.Warn("matched user has no live connection",
			zap.String("user_id", userID))
		return
	}
	c.Send(models.ServerMessage{Event: models.EventMatchFound, Data: payload})
}
