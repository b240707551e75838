package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	profileDomain "creditwise-backend/internal/domain/profile"
	"creditwise-backend/internal/usecase/emi"
	"creditwise-backend/internal/usecase/score"
)

// Context key set by the auth middleware.
const userIDKey = "user_id"

func userID(c echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}

func errJSON(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, ErrorResponse{Error: msg, Code: code})
}

// writeDomainErr maps domain error kinds onto the HTTP surface. Every error
// kind the usecases can return is matched here; anything unknown is a 500.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, profileDomain.ErrNotFound):
		return errJSON(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Financial profile not found. Please create a profile first.")
	case errors.Is(err, profileDomain.ErrAlreadyExists):
		return errJSON(c, http.StatusConflict, "PROFILE_EXISTS", "Financial profile already exists for this user. Use update endpoint to modify.")
	case errors.Is(err, profileDomain.ErrInvalidInput):
		return errJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, score.ErrInvalidProfile), errors.Is(err, emi.ErrInvalidLoanInput):
		return errJSON(c, http.StatusBadRequest, "CALCULATION_ERROR", err.Error())
	default:
		return errJSON(c, http.StatusInternalServerError, "SERVER_ERROR", "internal server error")
	}
}
