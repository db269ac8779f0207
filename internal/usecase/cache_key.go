package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

type recommendationCacheKeyInput struct {
	Skills          []string `json:"skills"`
	Limit           int      `json:"limit"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	SkillWeight     float64  `json:"skill_weight"`
	SalaryWeight    float64  `json:"salary_weight"`
	SnapshotBuilt   int64    `json:"snapshot_built"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// RecommendationCacheKey derives a stable key from everything the ranked
// output depends on. The snapshot build time is part of the key, so a corpus
// refresh can never serve results computed against the previous vocabulary.
func RecommendationCacheKey(skills []string, limit int, location, experienceLevel string, skillWeight, salaryWeight float64, builtAt time.Time) string {
	norm := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		norm = append(norm, s)
	}

	in := recommendationCacheKeyInput{
		Skills:          norm,
		Limit:           limit,
		Location:        normalizeCacheValue(location),
		ExperienceLevel: normalizeCacheValue(experienceLevel),
		SkillWeight:     skillWeight,
		SalaryWeight:    salaryWeight,
		SnapshotBuilt:   builtAt.UnixNano(),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "reco:" + hex.EncodeToString(sum[:])
}

func StatsCacheKey(kind string, limit int, builtAt time.Time) string {
	in := struct {
		Kind          string `json:"kind"`
		Limit         int    `json:"limit"`
		SnapshotBuilt int64  `json:"snapshot_built"`
	}{Kind: kind, Limit: limit, SnapshotBuilt: builtAt.UnixNano()}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "stats:" + kind + ":" + hex.EncodeToString(sum[:])
}
