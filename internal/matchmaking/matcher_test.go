package matchmaking

import (
	"testing"

	"github.com/hirehub/interview-signaling/internal/models"
)

func TestFirstFitPicksOldestSameType(t *testing.T) {
	pool := []Entry{
		{UserID: "a", CallType: models.CallTypeVoice},
		{UserID: "b", CallType: models.CallTypeVideo},
		{UserID: "c", CallType: models.CallTypeVideo},
	}

	idx := FirstFit{}.FindMatch(pool, Entry{UserID: "d", CallType: models.CallTypeVideo})
	if idx != 1 {
		t.Fatalf("expected index 1 (oldest video waiter), got %d", idx)
	}
}

func TestFirstFitSkipsSelf(t *testing.T) {
	pool := []Entry{{UserID: "a", CallType: models.CallTypeVideo}}

	if idx := (FirstFit{}).FindMatch(pool, Entry{UserID: "a", CallType: models.CallTypeVideo}); idx != -1 {
		t.Fatalf("matched against self at index %d", idx)
	}
}

func TestFirstFitEmptyPool(t *testing.T) {
	if idx := (FirstFit{}).FindMatch(nil, Entry{UserID: "a", CallType: models.CallTypeVoice}); idx != -1 {
		t.Fatalf("expected -1 on empty pool, got %d", idx)
	}
}

func TestFirstFitIgnoresSkills(t *testing.T) {
	pool := []Entry{
		{UserID: "a", Skills: []string{"cobol"}, CallType: models.CallTypeVideo},
	}

	idx := FirstFit{}.FindMatch(pool, Entry{UserID: "b", Skills: []string{"go", "react"}, CallType: models.CallTypeVideo})
	if idx != 0 {
		t.Fatal("pairing is type-only; disjoint skills must still match")
	}
}
