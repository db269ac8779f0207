package dto

type RecommendationResponse struct {
	PostingID       string   `json:"posting_id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	SimilarityScore float64  `json:"similarity_score"`
	SalaryScore     float64  `json:"salary_score"`
	CombinedScore   float64  `json:"combined_score"`
	SalaryKnown     bool     `json:"salary_known"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

type RecommendationListResponse struct {
	Count int                      `json:"count"`
	Items []RecommendationResponse `json:"items"`
}
