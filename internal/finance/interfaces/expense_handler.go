package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/sgorski00/finance-tracker/internal/finance/application"
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
	financeErrors "github.com/sgorski00/finance-tracker/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	CreateExpense(ownerID string, req application.CreateExpenseRequest) (*domain.Expense, error)
	GetUserExpenses(ownerID string) ([]domain.Expense, error)
	UpdateExpense(ownerID string, expenseID int, patch application.ExpensePatch) (*domain.Expense, error)
	DeleteExpense(ownerID string, expenseID int) error
	GetExpenseSummary(ownerID string) ([]domain.CategorySummary, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// respondDomainError maps the resource-operation error taxonomy to HTTP
// status codes: validation 422, missing id 404, foreign owner 403.
func respondDomainError(respondError func(http.ResponseWriter, int, string), w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, financeErrors.ErrExpenseNotFound):
		respondError(w, http.StatusNotFound, "Expense not found")
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, financeErrors.ErrNotOwner):
		respondError(w, http.StatusForbidden, "Not authorized to access this record")
	default:
		log.Printf("unexpected resource operation error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req application.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.CreateExpense(userID, req)
	if err != nil {
		respondDomainError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) GetUserExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenses, err := h.service.GetUserExpenses(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	h.respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenseID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	var patch application.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.UpdateExpense(userID, expenseID, patch)
	if err != nil {
		respondDomainError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenseID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	if err := h.service.DeleteExpense(userID, expenseID); err != nil {
		respondDomainError(h.respondError, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ExpenseHandler) GetExpenseSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetExpenseSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expense summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
