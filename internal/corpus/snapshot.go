package corpus

import (
	"sync/atomic"
	"time"

	"job-compass/internal/recommend"
)

// Posting is one job posting as loaded from the data source. SalaryKnown
// distinguishes an absent salary from zero; the loader sets it, the scorer
// reads it, nothing in between mutates it.
type Posting struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Industry        string
	ExperienceLevel string
	SkillsText      string
	SalaryMin       float64
	SalaryMax       float64
	SalaryKnown     bool
	PostedAt        *time.Time
}

// Snapshot pairs a postings set with the vocabulary, skill sets and vectors
// derived from it. A snapshot is immutable once built; refreshing the corpus
// builds a fresh snapshot and swaps it in whole, so readers never observe a
// half-rebuilt vocabulary.
type Snapshot struct {
	Postings []Posting
	Skills   [][]string // normalized skill set per posting, parallel to Postings
	Model    *recommend.Model
	Vectors  []recommend.Vector // parallel to Postings
	BuiltAt  time.Time

	byID map[string]int
}

// Build derives the skill sets, vocabulary and TF-IDF vectors for postings.
// Postings with empty skill text get an empty set and a zero vector; they
// stay in the snapshot and simply never match. Vocabulary order is first-seen
// over postings in load order, so the same postings always produce the same
// vectors.
func Build(tok recommend.Tokenizer, postings []Posting) *Snapshot {
	docs := make([]string, len(postings))
	for i, p := range postings {
		docs[i] = p.SkillsText
	}
	model := recommend.Fit(tok, docs)

	skills := make([][]string, len(postings))
	vectors := make([]recommend.Vector, len(postings))
	byID := make(map[string]int, len(postings))
	for i, p := range postings {
		skills[i] = tok.Tokens(p.SkillsText)
		vectors[i] = model.Transform(skills[i])
		byID[p.ID] = i
	}

	return &Snapshot{
		Postings: postings,
		Skills:   skills,
		Model:    model,
		Vectors:  vectors,
		BuiltAt:  time.Now().UTC(),
		byID:     byID,
	}
}

// PostingByID resolves a posting for display joins after ranking.
func (s *Snapshot) PostingByID(id string) (Posting, bool) {
	if s == nil {
		return Posting{}, false
	}
	idx, ok := s.byID[id]
	if !ok {
		return Posting{}, false
	}
	return s.Postings[idx], true
}

// Candidates materializes the scorer's view of the snapshot. A nil keep
// includes everything; otherwise only postings keep returns true for are
// scored. Vectors and IDF stay those of the full snapshot either way, so
// filtering narrows the race without reshaping the space.
func (s *Snapshot) Candidates(keep func(Posting) bool) []recommend.Candidate {
	if s == nil {
		return nil
	}
	out := make([]recommend.Candidate, 0, len(s.Postings))
	for i, p := range s.Postings {
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, recommend.Candidate{
			ID:          p.ID,
			Skills:      s.Skills[i],
			Vector:      s.Vectors[i],
			Salary:      p.SalaryMin,
			SalaryKnown: p.SalaryKnown,
		})
	}
	return out
}

// Store holds the current snapshot behind an atomic pointer. Load returns nil
// until the first Swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() *Snapshot {
	if s == nil {
		return nil
	}
	return s.current.Load()
}

func (s *Store) Swap(next *Snapshot) {
	if s == nil || next == nil {
		return
	}
	s.current.Store(next)
}
