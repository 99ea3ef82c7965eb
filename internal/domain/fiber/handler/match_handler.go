package handler

import (
	"errors"

	"github.com/fadilmartias/talent-matcher/internal/dto"
	"github.com/fadilmartias/talent-matcher/internal/middleware"
	"github.com/fadilmartias/talent-matcher/internal/usecase"
	"github.com/fadilmartias/talent-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc *usecase.MatchUsecase
}

func NewMatchHandler(uc *usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	match := app.Group("/v1/match", middleware.CallerAuth())
	match.Get("/:job_id/top", h.TopMatches)
	match.Post("/batch", middleware.RequireAPIKey(), h.BatchMatch)
}

func (h *MatchHandler) TopMatches(c *fiber.Ctx) error {
	jobID := c.Params("job_id")
	limit := c.QueryInt("limit", 10)
	caller := middleware.CallerFromCtx(c)

	result, err := h.uc.TopMatches(c.UserContext(), caller, jobID, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidLimit):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "Invalid limit parameter (must be 1-50)",
			})
		case errors.Is(err, usecase.ErrJobForbidden):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "You can only view matches for your own jobs",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to compute matches",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get top matches",
		Data:    result,
	})
}

func (h *MatchHandler) BatchMatch(c *fiber.Ctx) error {
	var req dto.BatchMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_ids list is required",
		}, err)
	}

	result, err := h.uc.BatchMatches(c.UserContext(), req.JobIDs)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoJobIDs):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "At least one job ID is required",
			})
		case errors.Is(err, usecase.ErrBatchTooLarge):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "Maximum 10 jobs can be processed in batch",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to run batch matching",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success run batch matching",
		Data:    result,
	})
}
