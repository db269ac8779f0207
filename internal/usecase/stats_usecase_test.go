package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"job-compass/internal/corpus"
	"job-compass/internal/recommend"
)

func statsTestSnapshot() *corpus.Snapshot {
	tok := recommend.NewTokenizer(",")
	return corpus.Build(tok, []corpus.Posting{
		{ID: "1", Location: "London", SkillsText: "python, sql", SalaryMin: 80000, SalaryKnown: true},
		{ID: "2", Location: "Leeds", SkillsText: "python, excel", SalaryMin: 60000, SalaryKnown: true},
		{ID: "3", Location: "London", SkillsText: "python", SalaryMin: 50000, SalaryKnown: true},
		{ID: "4", Location: "", SkillsText: "sql"},
	})
}

func newTestStats(snap *corpus.Snapshot) *MarketStats {
	return NewMarketStatsUsecase(&stubSnapshots{snap: snap}, nil, nil)
}

func TestMarketStats_CorpusNotReady(t *testing.T) {
	uc := newTestStats(nil)

	if _, err := uc.LocationCounts(context.Background()); !errors.Is(err, ErrCorpusNotReady) {
		t.Fatalf("expected ErrCorpusNotReady, got %v", err)
	}
	if _, err := uc.SalarySummary(context.Background()); !errors.Is(err, ErrCorpusNotReady) {
		t.Fatalf("expected ErrCorpusNotReady, got %v", err)
	}
	if _, err := uc.TopSkills(context.Background(), 5); !errors.Is(err, ErrCorpusNotReady) {
		t.Fatalf("expected ErrCorpusNotReady, got %v", err)
	}
}

func TestMarketStats_LocationCounts(t *testing.T) {
	uc := newTestStats(statsTestSnapshot())

	got, err := uc.LocationCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []LocationCount{
		{Location: "London", Count: 2},
		{Location: "Leeds", Count: 1},
		{Location: "unknown", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMarketStats_SalarySummary(t *testing.T) {
	uc := newTestStats(statsTestSnapshot())

	got, err := uc.SalarySummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.Known != 3 || got.Unknown != 1 {
		t.Fatalf("known/unknown = %d/%d, want 3/1", got.Known, got.Unknown)
	}
	if got.Min != 50000 || got.Max != 80000 {
		t.Fatalf("min/max = %v/%v", got.Min, got.Max)
	}
	if got.Median != 60000 {
		t.Fatalf("median = %v, want 60000", got.Median)
	}
	wantMean := (50000.0 + 60000.0 + 80000.0) / 3
	if got.Mean != wantMean {
		t.Fatalf("mean = %v, want %v", got.Mean, wantMean)
	}
}

func TestMarketStats_SalarySummary_EvenMedian(t *testing.T) {
	tok := recommend.NewTokenizer(",")
	uc := newTestStats(corpus.Build(tok, []corpus.Posting{
		{ID: "1", SkillsText: "go", SalaryMin: 40000, SalaryKnown: true},
		{ID: "2", SkillsText: "go", SalaryMin: 60000, SalaryKnown: true},
	}))

	got, err := uc.SalarySummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Median != 50000 {
		t.Fatalf("median = %v, want 50000", got.Median)
	}
}

func TestMarketStats_TopSkills(t *testing.T) {
	uc := newTestStats(statsTestSnapshot())

	got, err := uc.TopSkills(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []SkillCount{
		{Skill: "python", Count: 3},
		{Skill: "sql", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
