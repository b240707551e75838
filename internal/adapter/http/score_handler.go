package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	historyuc "creditwise-backend/internal/usecase/history"
	scoreuc "creditwise-backend/internal/usecase/score"
)

type ScoreHandler struct {
	scores  *scoreuc.Usecase
	history *historyuc.Usecase
}

func NewScoreHandler(scores *scoreuc.Usecase, history *historyuc.Usecase) *ScoreHandler {
	return &ScoreHandler{scores: scores, history: history}
}

type calculateScoreReq struct {
	UseExisting bool           `json:"useExisting"`
	Custom      *scoreuc.Input `json:"customProfile"`
}

func (h *ScoreHandler) Calculate(c echo.Context) error {
	var req calculateScoreReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	dto, err := h.scores.Calculate(c.Request().Context(), userID(c), scoreuc.CalculateInput{
		UseExisting: req.UseExisting,
		Custom:      req.Custom,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GetScore is Calculate with useExisting implied.
func (h *ScoreHandler) GetScore(c echo.Context) error {
	dto, err := h.scores.Calculate(c.Request().Context(), userID(c), scoreuc.CalculateInput{UseExisting: true})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type whatIfReq struct {
	Profile *scoreuc.Input `json:"profile"`
}

func (h *ScoreHandler) WhatIf(c echo.Context) error {
	var req whatIfReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if req.Profile == nil {
		return errJSON(c, http.StatusBadRequest, "MISSING_PROFILE", "Custom profile data is required")
	}
	dto, err := h.scores.WhatIf(c.Request().Context(), *req.Profile)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ScoreHandler) History(c echo.Context) error {
	entries, simulated, err := h.history.List(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"history":   entries,
		"simulated": simulated,
	})
}
