package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = map[string]string{
	"Esc":    "KC_ESC",
	"Enter":  "KC_ENT",
	"Tab":    "KC_TAB",
	"PageUp": "KC_PGUP",
	"E":      "KC_E",
}

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates("Escp", known)

	require.Len(t, candidates, len(known))

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "Esc", best.Label)
	assert.Equal(t, "KC_ESC", best.Token)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestRankCandidates_MatchesToken(t *testing.T) {
	candidates := RankCandidates("KC_PGUP", known)

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "PageUp", best.Label)
	assert.InDelta(t, 1.0, best.Score, 0.0001)
}

func TestRankCandidates_Deterministic(t *testing.T) {
	a := RankCandidates("x", known)
	b := RankCandidates("x", known)

	assert.Equal(t, a.Labels(), b.Labels())
}

func TestCandidateList_Helpers(t *testing.T) {
	list := CandidateList{
		{Label: "a", Score: 0.9},
		{Label: "b", Score: 0.5},
		{Label: "c", Score: 0.1},
	}

	assert.Equal(t, []string{"a", "b"}, list.Top(2).Labels())
	assert.Equal(t, []string{"a", "b", "c"}, list.Top(10).Labels())
	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.5).Labels())
	assert.Nil(t, CandidateList{}.Best())
}
