package http

import (
	"context"
	"net/http"
	"testing"

	"gorm.io/gorm"

	profileDomain "creditwise-backend/internal/domain/profile"
	"creditwise-backend/internal/domain/uow"
	"creditwise-backend/internal/testutil/profilemock"
	"creditwise-backend/internal/testutil/uowmock"
	profileuc "creditwise-backend/internal/usecase/profile"
)

func newProfileHandler(repo *profilemock.Repo) *ProfileHandler {
	unit := &uowmock.UoW{Repos: uow.Repos{Profiles: repo}}
	return NewProfileHandler(profileuc.NewUsecase(repo, unit))
}

const validProfileBody = `{
	"age": 30, "monthly_income": 50000, "monthly_expenses": 15000,
	"employment_type": "Salaried", "existing_loan_amount": 0,
	"credit_utilization_percentage": 10, "payment_history_status": "Excellent"
}`

func TestProfileCreate_Success(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newProfileHandler(repo)
	c, rec := newTestContext(t, http.MethodPost, "/api/financial-profile", validProfileBody)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var dto profileuc.DTO
	decodeBody(t, rec, &dto)
	if dto.UserID != "user-1" || dto.MonthlyIncome != 50000 {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestProfileCreate_ValidationDetails(t *testing.T) {
	h := newProfileHandler(&profilemock.Repo{})
	c, rec := newTestContext(t, http.MethodPost, "/api/financial-profile", `{
		"age": 17, "monthly_income": 50000.123, "monthly_expenses": 15000,
		"employment_type": "Wizard", "existing_loan_amount": 0,
		"credit_utilization_percentage": 10, "payment_history_status": "Excellent"
	}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	er := decodeErr(t, rec)
	if er.Code != "VALIDATION_ERROR" {
		t.Fatalf("code = %s, want VALIDATION_ERROR", er.Code)
	}
	if !containsFieldMsg(er.Details, "Age", "greater than or equal to 18") {
		t.Errorf("missing age detail in %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "MonthlyIncome", "2 decimal places") {
		t.Errorf("missing income detail in %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "EmploymentType", "must be one of") {
		t.Errorf("missing employment detail in %+v", er.Details)
	}
}

func TestProfileCreate_Duplicate(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
			return &profileDomain.FinancialProfile{UserID: userID}, nil
		},
	}
	h := newProfileHandler(repo)
	c, rec := newTestContext(t, http.MethodPost, "/api/financial-profile", validProfileBody)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if er := decodeErr(t, rec); er.Code != "PROFILE_EXISTS" {
		t.Fatalf("code = %s, want PROFILE_EXISTS", er.Code)
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newProfileHandler(repo)
	c, rec := newTestContext(t, http.MethodGet, "/api/financial-profile", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if er := decodeErr(t, rec); er.Code != "PROFILE_NOT_FOUND" {
		t.Fatalf("code = %s, want PROFILE_NOT_FOUND", er.Code)
	}
}

func TestProfileUpdate_PartialBody(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
			return &profileDomain.FinancialProfile{
				UserID:               userID,
				Age:                  30,
				MonthlyIncome:        50000,
				MonthlyExpenses:      15000,
				EmploymentType:       profileDomain.EmploymentSalaried,
				CreditUtilizationPct: 10,
				PaymentHistoryStatus: profileDomain.PaymentExcellent,
			}, nil
		},
	}
	h := newProfileHandler(repo)
	c, rec := newTestContext(t, http.MethodPut, "/api/financial-profile", `{"monthly_income": 65000}`)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var dto profileuc.DTO
	decodeBody(t, rec, &dto)
	if dto.MonthlyIncome != 65000 || dto.Age != 30 {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestProfileExists(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newProfileHandler(repo)
	c, rec := newTestContext(t, http.MethodGet, "/api/financial-profile/exists", "")

	if err := h.Exists(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]bool
	decodeBody(t, rec, &resp)
	if resp["has_profile"] {
		t.Fatal("has_profile = true, want false")
	}
}
