package neardup

import "sort"

// MaxPostings is the longest posting list that still produces pairs. Longer
// lists belong to boilerplate shared by most files.
const MaxPostings = 50

// PairScore is a candidate pair from one partition.
type PairScore struct {
	Low, High  int // file indices, Low < High
	Shared     int
	LowCount   int
	HighCount  int
	Similarity float64
}

// ScorePairs compares the members of one partition through an inverted index.
//
// fps is indexed by file index and must hold sorted, de-duplicated
// fingerprint sets; members with an empty set are ignored. Pairs whose
// Jaccard similarity reaches threshold are returned sorted by (Low, High).
func ScorePairs(fps [][]uint64, members []int, threshold float64) []PairScore {
	postings := make(map[uint64][]int)
	for _, m := range members {
		for _, fp := range fps[m] {
			postings[fp] = append(postings[fp], m)
		}
	}

	shared := make(map[[2]int]int)
	for _, list := range postings {
		if len(list) > MaxPostings {
			continue
		}
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i], list[j]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				shared[[2]int{a, b}]++
			}
		}
	}

	var scores []PairScore
	for key, n := range shared {
		lowCount, highCount := len(fps[key[0]]), len(fps[key[1]])
		union := lowCount + highCount - n
		if union <= 0 {
			continue
		}
		sim := float64(n) / float64(union)
		if sim < threshold {
			continue
		}
		scores = append(scores, PairScore{
			Low:        key[0],
			High:       key[1],
			Shared:     n,
			LowCount:   lowCount,
			HighCount:  highCount,
			Similarity: sim,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Low != scores[j].Low {
			return scores[i].Low < scores[j].Low
		}
		return scores[i].High < scores[j].High
	})
	return scores
}

// fingerprintSet sorts and de-duplicates fps in place.
func fingerprintSet(fps []uint64) []uint64 {
	if len(fps) < 2 {
		return fps
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i] < fps[j] })
	out := fps[:1]
	for _, v := range fps[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
