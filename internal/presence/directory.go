package presence

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/internal/models"
)

// Client is the minimal contract the core needs from a transport
// connection. Send must not block; implementations drop the message
// when the peer's buffer is full.
type Client interface {
	// ID returns the opaque connection handle. Handles are unique per
	// connection, not per user.
	ID() string
	Send(msg models.ServerMessage)
}

// StatusMirror receives best-effort copies of online/offline
// transitions. Implementations must never block the caller.
type StatusMirror interface {
	UserOnline(userID string)
	UserOffline(userID string)
}

// Directory maps user ids to the live connection currently
// representing them. At most one connection per user: a newer
// registration silently replaces the older one, so a user opening a
// second tab simply moves their presence there.
type Directory struct {
	mu       sync.RWMutex
	byUser   map[string]Client
	byHandle map[string]string // connection handle → user id

	mirror StatusMirror
	log    *zap.Logger
}

// NewDirectory creates an empty directory. mirror may be nil.
func NewDirectory(mirror StatusMirror, log *zap.Logger) *Directory {
	return &Directory{
		byUser:   make(map[string]Client),
		byHandle: make(map[string]string),
		mirror:   mirror,
		log:      log,
	}
}

// Register binds userID to c, replacing any previous connection for
// the same user. It then broadcasts an online notification to every
// connected client.
func (d *Directory) Register(userID string, c Client) {
	d.mu.Lock()
	if prev, ok := d.byUser[userID]; ok {
		delete(d.byHandle, prev.ID())
	}
	d.byUser[userID] = c
	d.byHandle[c.ID()] = userID
	d.mu.Unlock()

	d.log.Info("user registered", zap.String("user_id", userID), zap.String("handle", c.ID()))

	if d.mirror != nil {
		d.mirror.UserOnline(userID)
	}
	d.broadcastStatus(userID, "online")
}

// Lookup returns the connection currently representing userID.
func (d *Directory) Lookup(userID string) (Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.byUser[userID]
	return c, ok
}

// Unregister removes the mapping held by the given connection handle
// and reports which user it belonged to. A handle that was already
// replaced by a newer registration is a no-op: disconnect events can
// arrive after the user has reconnected elsewhere, and those must not
// evict the fresh mapping.
func (d *Directory) Unregister(handle string) (string, bool) {
	d.mu.Lock()
	userID, ok := d.byHandle[handle]
	if !ok {
		d.mu.Unlock()
		return "", false
	}
	delete(d.byHandle, handle)
	delete(d.byUser, userID)
	d.mu.Unlock()

	d.log.Info("user unregistered", zap.String("user_id", userID), zap.String("handle", handle))

	if d.mirror != nil {
		d.mirror.UserOffline(userID)
	}
	d.broadcastStatus(userID, "offline")
	return userID, true
}

// Online returns a snapshot of the currently registered user ids.
func (d *Directory) Online() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	users := make([]string, 0, len(d.byUser))
	for id := range d.byUser {
		users = append(users, id)
	}
	return users
}

// broadcastStatus fans the transition out to every connected client.
// At-most-once: a slow or gone recipient just misses it.
func (d *Directory) broadcastStatus(userID, status string) {
	d.mu.RLock()
	clients := make([]Client, 0, len(d.byUser))
	for _, c := range d.byUser {
		clients = append(clients, c)
	}
	d.mu.RUnlock()

	msg := models.ServerMessage{
		Event: models.EventUserStatus,
		Data:  models.UserStatusPayload{UserID: userID, Status: status},
	}
	for _, c := range clients {
		c.Send(msg)
	}
}
