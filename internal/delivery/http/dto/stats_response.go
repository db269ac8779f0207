package dto

type LocationCountResponse struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type SalarySummaryResponse struct {
	Known   int     `json:"known"`
	Unknown int     `json:"unknown"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
}

type SkillCountResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type RefreshResponse struct {
	RunID          string `json:"run_id"`
	PostingCount   int    `json:"posting_count"`
	VocabularySize int    `json:"vocabulary_size"`
	BuiltAt        string `json:"built_at"`
}
