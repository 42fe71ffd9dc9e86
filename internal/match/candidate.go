package match

import "sort"

// Candidate is a source field considered for a destination field.
type Candidate struct {
	// Source is the source field name.
	Source string
	// Index is the position of Source in the source field list.
	Index int
	// Distance is the edit distance between Source and the destination name.
	Distance int
}

// Similarity returns the normalized similarity between the candidate and dest.
func (c Candidate) Similarity(dest string) float64 {
	return LevenshteinNormalized(dest, c.Source)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every source field against dest and returns them
// ordered by ascending distance. Equal distances keep source order, so the
// first element is always the field Nearest would pick.
func RankCandidates(dest string, sources []string) CandidateList {
	candidates := make(CandidateList, 0, len(sources))
	for i, src := range sources {
		candidates = append(candidates, Candidate{
			Source:   src,
			Index:    i,
			Distance: Levenshtein(dest, src),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Nearest returns the source field with the smallest edit distance to dest.
// The first field reaching the minimum wins. ok is false when sources is empty.
func Nearest(dest string, sources []string) (best Candidate, ok bool) {
	for i, src := range sources {
		d := Levenshtein(dest, src)
		if !ok || d < best.Distance {
			best = Candidate{Source: src, Index: i, Distance: d}
			ok = true
		}
	}

	return best, ok
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by distance ascending, then by source position.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Distance != c[j].Distance {
		return c[i].Distance < c[j].Distance
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// IsAmbiguous returns true if the top two candidates are equally distant.
func (c CandidateList) IsAmbiguous() bool {
	return len(c) >= 2 && c[0].Distance == c[1].Distance
}
