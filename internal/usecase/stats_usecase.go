package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

const statsCacheTTL = 10 * time.Minute

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type SalarySummary struct {
	Known   int     `json:"known"`
	Unknown int     `json:"unknown"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// MarketStatsUsecase serves the aggregates behind the dashboard's charts:
// posting counts per location, the salary distribution, and the most
// demanded skills. All of it is derived from the current snapshot; rendering
// is the presentation layer's concern.
type MarketStatsUsecase interface {
	LocationCounts(ctx context.Context) ([]LocationCount, error)
	SalarySummary(ctx context.Context) (SalarySummary, error)
	TopSkills(ctx context.Context, limit int) ([]SkillCount, error)
}

type MarketStats struct {
	snapshots SnapshotSource
	cache     ResponseCache
	logger    *zap.Logger
}

func NewMarketStatsUsecase(snapshots SnapshotSource, cache ResponseCache, logger *zap.Logger) *MarketStats {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketStats{snapshots: snapshots, cache: cache, logger: logger}
}

func (u *MarketStats) LocationCounts(ctx context.Context) ([]LocationCount, error) {
	snap := u.snapshots.Load()
	if snap == nil {
		return nil, ErrCorpusNotReady
	}

	key := StatsCacheKey("locations", 0, snap.BuiltAt)
	if u.cache != nil {
		var cached []LocationCount
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	counts := make(map[string]int)
	for _, p := range snap.Postings {
		loc := p.Location
		if loc == "" {
			loc = "unknown"
		}
		counts[loc]++
	}

	out := make([]LocationCount, 0, len(counts))
	for loc, n := range counts {
		out = append(out, LocationCount{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Location < out[j].Location
	})

	u.writeCache(ctx, key, out)
	return out, nil
}

func (u *MarketStats) SalarySummary(ctx context.Context) (SalarySummary, error) {
	snap := u.snapshots.Load()
	if snap == nil {
		return SalarySummary{}, ErrCorpusNotReady
	}

	key := StatsCacheKey("salaries", 0, snap.BuiltAt)
	if u.cache != nil {
		var cached SalarySummary
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	known := make([]float64, 0, len(snap.Postings))
	unknown := 0
	for _, p := range snap.Postings {
		if p.SalaryKnown {
			known = append(known, p.SalaryMin)
		} else {
			unknown++
		}
	}

	out := SalarySummary{Known: len(known), Unknown: unknown}
	if len(known) > 0 {
		sort.Float64s(known)
		out.Min = known[0]
		out.Max = known[len(known)-1]

		var sum float64
		for _, s := range known {
			sum += s
		}
		out.Mean = sum / float64(len(known))

		mid := len(known) / 2
		if len(known)%2 == 0 {
			out.Median = (known[mid-1] + known[mid]) / 2
		} else {
			out.Median = known[mid]
		}
	}

	u.writeCache(ctx, key, out)
	return out, nil
}

func (u *MarketStats) TopSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	if limit < 1 {
		limit = 20
	}

	snap := u.snapshots.Load()
	if snap == nil {
		return nil, ErrCorpusNotReady
	}

	key := StatsCacheKey("skills", limit, snap.BuiltAt)
	if u.cache != nil {
		var cached []SkillCount
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out := make([]SkillCount, 0, len(snap.Model.Vocabulary))
	for _, term := range snap.Model.Vocabulary {
		out = append(out, SkillCount{Skill: term, Count: snap.Model.DocumentFrequency(term)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if limit < len(out) {
		out = out[:limit]
	}

	u.writeCache(ctx, key, out)
	return out, nil
}

func (u *MarketStats) writeCache(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, statsCacheTTL); err != nil {
		u.logger.Debug("stats cache write failed", zap.Error(err))
	}
}
