package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"creditwise-backend/internal/usecase/emi"
)

type EMIHandler struct{}

func NewEMIHandler() *EMIHandler { return &EMIHandler{} }

type emiCalculateReq struct {
	Principal  *float64 `json:"principal" validate:"required"`
	AnnualRate *float64 `json:"annualRate" validate:"required,gte=0"`
	Tenure     *float64 `json:"tenure" validate:"required,intlike"`
	TenureUnit string   `json:"tenureUnit" validate:"omitempty,oneof=months years"`
}

type emiQuickReq struct {
	Principal  *float64 `json:"principal" validate:"required"`
	AnnualRate *float64 `json:"annualRate" validate:"required,gte=0"`
	Tenure     *float64 `json:"tenure" validate:"required,intlike"`
}

type emiResponse struct {
	Data         any       `json:"data"`
	CalculatedAt time.Time `json:"calculated_at"`
}

func (h *EMIHandler) Calculate(c echo.Context) error {
	var req emiCalculateReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Code: "VALIDATION_ERROR", Details: ToFieldErrors(err),
		})
	}

	unit := emi.UnitMonths
	if req.TenureUnit == string(emi.UnitYears) {
		unit = emi.UnitYears
	}
	res, err := emi.ComputeSchedule(*req.Principal, *req.AnnualRate, int(*req.Tenure), unit)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, emiResponse{Data: res, CalculatedAt: time.Now().UTC()})
}

func (h *EMIHandler) Quick(c echo.Context) error {
	var req emiQuickReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Code: "VALIDATION_ERROR", Details: ToFieldErrors(err),
		})
	}

	res, err := emi.ComputeQuick(*req.Principal, *req.AnnualRate, int(*req.Tenure))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, emiResponse{Data: res, CalculatedAt: time.Now().UTC()})
}
