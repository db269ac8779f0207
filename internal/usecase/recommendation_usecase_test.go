package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"job-compass/internal/corpus"
	"job-compass/internal/recommend"
)

type stubSnapshots struct {
	snap *corpus.Snapshot
}

func (s *stubSnapshots) Load() *corpus.Snapshot  { return s.snap }
func (s *stubSnapshots) Swap(n *corpus.Snapshot) { s.snap = n }

type memCache struct {
	data        map[string][]byte
	sets        int
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.sets++
	return nil
}

func (m *memCache) InvalidateCorpus(context.Context) error {
	m.data = map[string][]byte{}
	m.invalidated++
	return nil
}

func recommendTestSnapshot() *corpus.Snapshot {
	tok := recommend.NewTokenizer(",")
	return corpus.Build(tok, []corpus.Posting{
		{ID: "1", Title: "Data Engineer", Company: "Acme", Location: "London", ExperienceLevel: "Senior", SkillsText: "Python, SQL", SalaryMin: 80000, SalaryKnown: true},
		{ID: "2", Title: "Analyst", Company: "Globex", Location: "Leeds", ExperienceLevel: "Junior", SkillsText: "Python, Excel", SalaryMin: 60000, SalaryKnown: true},
	})
}

func newTestRecommendation(snap *corpus.Snapshot, cache ResponseCache) *Recommendation {
	return NewRecommendationUsecase(
		&stubSnapshots{snap: snap},
		cache,
		recommend.NewTokenizer(","),
		recommend.DefaultWeights(),
		10,
		nil,
	)
}

func TestRecommendation_CorpusNotReady(t *testing.T) {
	uc := newTestRecommendation(nil, nil)

	_, err := uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "python"})
	if !errors.Is(err, ErrCorpusNotReady) {
		t.Fatalf("expected ErrCorpusNotReady, got %v", err)
	}
}

func TestRecommendation_InvalidQuery(t *testing.T) {
	uc := newTestRecommendation(recommendTestSnapshot(), nil)

	_, err := uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "  , "})
	if !errors.Is(err, recommend.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRecommendation_Success(t *testing.T) {
	uc := newTestRecommendation(recommendTestSnapshot(), nil)

	items, err := uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "python, sql"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].PostingID != "1" || items[0].Title != "Data Engineer" || items[0].Company != "Acme" {
		t.Fatalf("display join failed: %+v", items[0])
	}
	if !reflect.DeepEqual(items[1].MissingSkills, []string{"excel"}) {
		t.Fatalf("missing skills = %v, want [excel]", items[1].MissingSkills)
	}
}

func TestRecommendation_FacetFilter(t *testing.T) {
	uc := newTestRecommendation(recommendTestSnapshot(), nil)

	items, err := uc.GetRecommendations(context.Background(), RecommendationParams{
		Skills:   "python",
		Location: "london",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].PostingID != "1" {
		t.Fatalf("location filter failed: %+v", items)
	}

	items, err = uc.GetRecommendations(context.Background(), RecommendationParams{
		Skills:          "python",
		ExperienceLevel: "Junior",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].PostingID != "2" {
		t.Fatalf("experience filter failed: %+v", items)
	}
}

func TestRecommendation_WeightOverride(t *testing.T) {
	uc := newTestRecommendation(recommendTestSnapshot(), nil)
	half := 0.5

	// one without the other is a request error
	_, err := uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "python", SkillWeight: &half})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	bad := 0.9
	_, err = uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "python", SkillWeight: &bad, SalaryWeight: &bad})
	if !errors.Is(err, recommend.ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights, got %v", err)
	}

	items, err := uc.GetRecommendations(context.Background(), RecommendationParams{Skills: "python", SkillWeight: &half, SalaryWeight: &half})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestRecommendation_CacheRoundTrip(t *testing.T) {
	cache := newMemCache()
	uc := newTestRecommendation(recommendTestSnapshot(), cache)
	params := RecommendationParams{Skills: "python, sql", Limit: 5}

	first, err := uc.GetRecommendations(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.GetRecommendations(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("second call should be served from cache, writes = %d", cache.sets)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached result differs from computed:\n%v\n%v", first, second)
	}
}
