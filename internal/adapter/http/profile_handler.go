package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	profileuc "creditwise-backend/internal/usecase/profile"
)

type ProfileHandler struct{ uc *profileuc.Usecase }

func NewProfileHandler(uc *profileuc.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type createProfileReq struct {
	Age                  *int     `json:"age" validate:"required,gte=18,lte=100"`
	MonthlyIncome        *float64 `json:"monthly_income" validate:"required,gte=0,dec2"`
	MonthlyExpenses      *float64 `json:"monthly_expenses" validate:"required,gte=0,dec2"`
	EmploymentType       string   `json:"employment_type" validate:"required,employment"`
	ExistingLoanAmount   *float64 `json:"existing_loan_amount" validate:"required,gte=0,dec2"`
	CreditUtilizationPct *float64 `json:"credit_utilization_percentage" validate:"required,gte=0,lte=100"`
	PaymentHistoryStatus string   `json:"payment_history_status" validate:"required,payhistory"`
}

type updateProfileReq struct {
	Age                  *int     `json:"age" validate:"omitempty,gte=18,lte=100"`
	MonthlyIncome        *float64 `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	MonthlyExpenses      *float64 `json:"monthly_expenses" validate:"omitempty,gte=0,dec2"`
	EmploymentType       *string  `json:"employment_type" validate:"omitempty,employment"`
	ExistingLoanAmount   *float64 `json:"existing_loan_amount" validate:"omitempty,gte=0,dec2"`
	CreditUtilizationPct *float64 `json:"credit_utilization_percentage" validate:"omitempty,gte=0,lte=100"`
	PaymentHistoryStatus *string  `json:"payment_history_status" validate:"omitempty,payhistory"`
}

func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Code: "VALIDATION_ERROR", Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), userID(c), profileuc.CreateInput{
		Age:                  *req.Age,
		MonthlyIncome:        *req.MonthlyIncome,
		MonthlyExpenses:      *req.MonthlyExpenses,
		EmploymentType:       req.EmploymentType,
		ExistingLoanAmount:   *req.ExistingLoanAmount,
		CreditUtilizationPct: *req.CreditUtilizationPct,
		PaymentHistoryStatus: req.PaymentHistoryStatus,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProfileHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Code: "VALIDATION_ERROR", Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), userID(c), profileuc.UpdateInput{
		Age:                  req.Age,
		MonthlyIncome:        req.MonthlyIncome,
		MonthlyExpenses:      req.MonthlyExpenses,
		EmploymentType:       req.EmploymentType,
		ExistingLoanAmount:   req.ExistingLoanAmount,
		CreditUtilizationPct: req.CreditUtilizationPct,
		PaymentHistoryStatus: req.PaymentHistoryStatus,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProfileHandler) Exists(c echo.Context) error {
	has, err := h.uc.Exists(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"has_profile": has})
}
