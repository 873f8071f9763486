package match

import "sort"

// Candidate is a known label that resembles an unknown one.
type Candidate struct {
	// Label is the known label.
	Label string
	// Token is the keycode the label resolves to.
	Token string
	// Score is the normalized similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known label against target and returns the
// candidates sorted by score (descending). Both the label and its token are
// compared; the better score wins.
func RankCandidates(target string, known map[string]string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for label, token := range known {
		score := NormalizedLevenshteinScore(target, label)
		if s := NormalizedLevenshteinScore(target, token); s > score {
			score = s
		}

		candidates = append(candidates, Candidate{Label: label, Token: token, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by label for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Label < c[j].Label
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Labels returns the labels of the candidates.
func (c CandidateList) Labels() []string {
	labels := make([]string, len(c))
	for i, cand := range c {
		labels[i] = cand.Label
	}

	return labels
}
