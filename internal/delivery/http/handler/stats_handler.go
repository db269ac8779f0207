package handler

import (
	"errors"

	"job-compass/internal/delivery/http/dto"
	"job-compass/internal/delivery/http/middleware"
	"job-compass/internal/pkg/response"
	"job-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.MarketStatsUsecase
}

func NewStatsHandler(uc usecase.MarketStatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/stats")
	grp.Get("/locations", h.Locations)
	grp.Get("/salaries", h.Salaries)
	grp.Get("/skills", h.Skills)
}

func (h *StatsHandler) Locations(c fiber.Ctx) error {
	items, err := h.uc.LocationCounts(c.Context())
	if err != nil {
		return mapStatsError(err)
	}

	out := make([]dto.LocationCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LocationCountResponse{Location: it.Location, Count: it.Count})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *StatsHandler) Salaries(c fiber.Ctx) error {
	s, err := h.uc.SalarySummary(c.Context())
	if err != nil {
		return mapStatsError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SalarySummaryResponse{
		Known:   s.Known,
		Unknown: s.Unknown,
		Min:     s.Min,
		Max:     s.Max,
		Mean:    s.Mean,
		Median:  s.Median,
	})
}

func (h *StatsHandler) Skills(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 20)
	items, err := h.uc.TopSkills(c.Context(), limit)
	if err != nil {
		return mapStatsError(err)
	}

	out := make([]dto.SkillCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SkillCountResponse{Skill: it.Skill, Count: it.Count})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapStatsError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCorpusNotReady):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "corpus not loaded yet", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
