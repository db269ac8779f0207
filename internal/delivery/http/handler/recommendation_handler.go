package handler

import (
	"errors"
	"strconv"

	"job-compass/internal/delivery/http/dto"
	"job-compass/internal/delivery/http/middleware"
	"job-compass/internal/pkg/response"
	"job-compass/internal/recommend"
	"job-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	params := usecase.RecommendationParams{
		Skills:          c.Query("skills"),
		Limit:           parseQueryInt(c, "k", 0),
		Location:        c.Query("location"),
		ExperienceLevel: c.Query("experience_level"),
	}

	var err error
	params.SkillWeight, err = parseQueryFloat(c, "w_skill")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "w_skill must be a number", nil, err)
	}
	params.SalaryWeight, err = parseQueryFloat(c, "w_salary")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "w_salary must be a number", nil, err)
	}

	items, err := h.uc.GetRecommendations(c.Context(), params)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := dto.RecommendationListResponse{
		Count: len(items),
		Items: make([]dto.RecommendationResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.RecommendationResponse{
			PostingID:       it.PostingID,
			Title:           it.Title,
			Company:         it.Company,
			Location:        it.Location,
			SimilarityScore: it.Similarity,
			SalaryScore:     it.SalaryScore,
			CombinedScore:   it.CombinedScore,
			SalaryKnown:     it.SalaryKnown,
			MatchedSkills:   it.MatchedSkills,
			MissingSkills:   it.MissingSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryFloat(c fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, recommend.ErrInvalidQuery):
		return middleware.NewAppError(fiber.StatusBadRequest, "skills must contain at least one skill", nil, err)
	case errors.Is(err, recommend.ErrInvalidWeights):
		return middleware.NewAppError(fiber.StatusBadRequest, "w_skill and w_salary must lie in [0,1] and sum to 1", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "w_skill and w_salary must be provided together", nil, err)
	case errors.Is(err, usecase.ErrCorpusNotReady):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "corpus not loaded yet", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
