package handler

import (
	"time"

	"job-compass/internal/delivery/http/dto"
	"job-compass/internal/delivery/http/middleware"
	"job-compass/internal/pkg/response"
	"job-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CorpusHandler struct {
	uc usecase.CorpusRefreshUsecase
}

func NewCorpusHandler(uc usecase.CorpusRefreshUsecase) *CorpusHandler {
	return &CorpusHandler{uc: uc}
}

func (h *CorpusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/corpus")
	grp.Post("/refresh", h.Refresh)
}

func (h *CorpusHandler) Refresh(c fiber.Ctx) error {
	res, err := h.uc.Refresh(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RefreshResponse{
		RunID:          res.RunID.String(),
		PostingCount:   res.PostingCount,
		VocabularySize: res.VocabularySize,
		BuiltAt:        res.BuiltAt.Format(time.RFC3339),
	})
}
