package recommend

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrInvalidQuery   = errors.New("query contains no parseable skill token")
	ErrInvalidWeights = errors.New("scoring weights must lie in [0,1] and sum to 1")
)

const (
	DefaultSkillWeight  = 0.7
	DefaultSalaryWeight = 0.3
	DefaultLimit        = 10

	weightSumTolerance = 1e-6
)

// Weights blend skill similarity and the normalized salary signal into one
// combined score. Both must lie in [0,1] and sum to 1.
type Weights struct {
	Skill  float64
	Salary float64
}

func DefaultWeights() Weights {
	return Weights{Skill: DefaultSkillWeight, Salary: DefaultSalaryWeight}
}

func (w Weights) Validate() error {
	if w.Skill < 0 || w.Skill > 1 || w.Salary < 0 || w.Salary > 1 {
		return ErrInvalidWeights
	}
	if math.Abs(w.Skill+w.Salary-1) > weightSumTolerance {
		return ErrInvalidWeights
	}
	return nil
}

// Candidate is one posting as the scorer sees it: its normalized skill set,
// its vector in the snapshot's space, and its salary signal. SalaryKnown
// distinguishes a missing salary from an actual zero.
type Candidate struct {
	ID          string
	Skills      []string
	Vector      Vector
	Salary      float64
	SalaryKnown bool
}

type Recommendation struct {
	PostingID     string
	Similarity    float64
	SalaryScore   float64
	CombinedScore float64
	SalaryKnown   bool
	MatchedSkills []string
	MissingSkills []string
}

// Rank scores every candidate against the query and returns the top k,
// ordered by combined score descending, ties broken by similarity descending
// and then posting id ascending. Salary scores are min-max normalized across
// the candidates passed in. k <= 0 falls back to DefaultLimit; k larger than
// the candidate set returns everything ranked. An empty candidate set is a
// valid zero-result state, not an error.
func Rank(model *Model, tok Tokenizer, query string, cands []Candidate, w Weights, k int) ([]Recommendation, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	queryTokens := tok.Tokens(query)
	if len(queryTokens) == 0 {
		return nil, ErrInvalidQuery
	}

	if k <= 0 {
		k = DefaultLimit
	}
	if model == nil || len(cands) == 0 {
		return []Recommendation{}, nil
	}

	queryVector := model.Transform(queryTokens)
	querySet := make(map[string]struct{}, len(queryTokens))
	for _, term := range queryTokens {
		querySet[term] = struct{}{}
	}

	salaryScores := normalizeSalaries(cands)

	out := make([]Recommendation, 0, len(cands))
	for i, c := range cands {
		sim := Cosine(queryVector, c.Vector)
		matched, missing := splitSkills(c.Skills, querySet)

		out = append(out, Recommendation{
			PostingID:     c.ID,
			Similarity:    sim,
			SalaryScore:   salaryScores[i],
			CombinedScore: w.Skill*sim + w.Salary*salaryScores[i],
			SalaryKnown:   c.SalaryKnown,
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CombinedScore != out[j].CombinedScore {
			return out[i].CombinedScore > out[j].CombinedScore
		}
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].PostingID < out[j].PostingID
	})

	if k < len(out) {
		out = out[:k]
	}
	return out, nil
}

// normalizeSalaries min-max normalizes known salaries to [0,1]. Unknown
// salaries score 0. When every known salary is equal there is no spread to
// rank on, so each known salary scores 1 rather than dividing by zero.
func normalizeSalaries(cands []Candidate) []float64 {
	var minS, maxS float64
	known := 0
	for _, c := range cands {
		if !c.SalaryKnown {
			continue
		}
		if known == 0 || c.Salary < minS {
			minS = c.Salary
		}
		if known == 0 || c.Salary > maxS {
			maxS = c.Salary
		}
		known++
	}

	scores := make([]float64, len(cands))
	if known == 0 {
		return scores
	}

	spread := maxS - minS
	for i, c := range cands {
		if !c.SalaryKnown {
			continue
		}
		if spread == 0 {
			scores[i] = 1
			continue
		}
		s := (c.Salary - minS) / spread
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		scores[i] = s
	}
	return scores
}

// splitSkills partitions a posting's skill set against the query set,
// preserving the posting's skill order in both halves.
func splitSkills(skills []string, querySet map[string]struct{}) (matched, missing []string) {
	matched = make([]string, 0, len(skills))
	missing = make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := querySet[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}
