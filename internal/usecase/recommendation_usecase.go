package usecase

import (
	"context"
	"strings"
	"time"

	"job-compass/internal/corpus"
	"job-compass/internal/recommend"

	"go.uber.org/zap"
)

const recommendationCacheTTL = 5 * time.Minute

// SnapshotSource yields the current corpus snapshot, or nil before the first
// successful refresh.
type SnapshotSource interface {
	Load() *corpus.Snapshot
}

type RecommendationParams struct {
	Skills          string
	Limit           int
	Location        string
	ExperienceLevel string

	// Optional per-request weight override. Both must be set together and
	// pass the same validation as the configured weights.
	SkillWeight  *float64
	SalaryWeight *float64
}

type RecommendationItem struct {
	PostingID     string   `json:"posting_id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Similarity    float64  `json:"similarity_score"`
	SalaryScore   float64  `json:"salary_score"`
	CombinedScore float64  `json:"combined_score"`
	SalaryKnown   bool     `json:"salary_known"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	snapshots    SnapshotSource
	cache        ResponseCache
	tokenizer    recommend.Tokenizer
	weights      recommend.Weights
	defaultLimit int
	logger       *zap.Logger
}

func NewRecommendationUsecase(snapshots SnapshotSource, cache ResponseCache, tokenizer recommend.Tokenizer, weights recommend.Weights, defaultLimit int, logger *zap.Logger) *Recommendation {
	if defaultLimit < 1 {
		defaultLimit = recommend.DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{
		snapshots:    snapshots,
		cache:        cache,
		tokenizer:    tokenizer,
		weights:      weights,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error) {
	weights, err := u.resolveWeights(params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit < 1 {
		limit = u.defaultLimit
	}

	snap := u.snapshots.Load()
	if snap == nil {
		return nil, ErrCorpusNotReady
	}

	queryTokens := u.tokenizer.Tokens(params.Skills)
	if len(queryTokens) == 0 {
		return nil, recommend.ErrInvalidQuery
	}

	key := RecommendationCacheKey(queryTokens, limit, params.Location, params.ExperienceLevel, weights.Skill, weights.Salary, snap.BuiltAt)
	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	cands := snap.Candidates(facetFilter(params.Location, params.ExperienceLevel))

	ranked, err := recommend.Rank(snap.Model, u.tokenizer, params.Skills, cands, weights, limit)
	if err != nil {
		return nil, err
	}

	out := make([]RecommendationItem, 0, len(ranked))
	for _, rec := range ranked {
		item := RecommendationItem{
			PostingID:     rec.PostingID,
			Similarity:    rec.Similarity,
			SalaryScore:   rec.SalaryScore,
			CombinedScore: rec.CombinedScore,
			SalaryKnown:   rec.SalaryKnown,
			MatchedSkills: rec.MatchedSkills,
			MissingSkills: rec.MissingSkills,
		}
		if p, ok := snap.PostingByID(rec.PostingID); ok {
			item.Title = p.Title
			item.Company = p.Company
			item.Location = p.Location
		}
		out = append(out, item)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, recommendationCacheTTL); err != nil {
			u.logger.Debug("recommendation cache write failed", zap.Error(err))
		}
	}

	u.logger.Debug("recommendations computed",
		zap.Int("candidates", len(cands)),
		zap.Int("returned", len(out)),
		zap.Int("query_tokens", len(queryTokens)),
	)
	return out, nil
}

func (u *Recommendation) resolveWeights(params RecommendationParams) (recommend.Weights, error) {
	if params.SkillWeight == nil && params.SalaryWeight == nil {
		return u.weights, nil
	}
	if params.SkillWeight == nil || params.SalaryWeight == nil {
		return recommend.Weights{}, ErrInvalidInput
	}

	w := recommend.Weights{Skill: *params.SkillWeight, Salary: *params.SalaryWeight}
	if err := w.Validate(); err != nil {
		return recommend.Weights{}, err
	}
	return w, nil
}

func facetFilter(location, experienceLevel string) func(corpus.Posting) bool {
	location = strings.TrimSpace(location)
	experienceLevel = strings.TrimSpace(experienceLevel)
	if location == "" && experienceLevel == "" {
		return nil
	}
	return func(p corpus.Posting) bool {
		if location != "" && !strings.EqualFold(p.Location, location) {
			return false
		}
		if experienceLevel != "" && !strings.EqualFold(p.ExperienceLevel, experienceLevel) {
			return false
		}
		return true
	}
}
