package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/hirehub/interview-signaling/internal/matchmaking"
	"github.com/hirehub/interview-signaling/internal/presence"
)

// PresenceResponse is the snapshot the job-board backend polls to
// show who is reachable for calls.
type PresenceResponse struct {
	Online  []string `json:"online"`
	Waiting int      `json:"waiting"`
}

// GetPresence returns the currently online user ids and the number of
// users waiting in the matchmaking queue.
func GetPresence(dir *presence.Directory, queue *matchmaking.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		online := dir.Online()
		sort.Strings(online)

		c.JSON(http.StatusOK, PresenceResponse{
			Online:  online,
			Waiting: queue.Len(),
		})
	}
}
