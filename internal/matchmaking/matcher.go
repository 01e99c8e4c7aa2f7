package matchmaking

// Matcher picks a partner for candidate out of the waiting pool.
// Implementations return the pool index of the chosen entry, or -1
// when nobody fits. The queue owns enqueue/dequeue mechanics; swapping
// the strategy (say, for skill-ranked pairing) never touches them.
type Matcher interface {
	FindMatch(pool []Entry, candidate Entry) int
}

// FirstFit pairs on call type only: the oldest waiting entry with the
// same type and a different user wins. Skills are recorded on entries
// but deliberately not used to gate pairing — for interview practice
// any peer beats no peer.
type FirstFit struct{}

func (FirstFit) FindMatch(pool []Entry, candidate Entry) int {
	for i, e := range pool {
		if e.CallType == candidate.CallType && e.UserID != candidate.UserID {
			return i
		}
	}
	return -1
}
