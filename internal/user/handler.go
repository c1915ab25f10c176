package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

// ExpenseLister is the slice of the expense service the profile endpoint
// needs. Owned expenses are fetched with an explicit query, never through
// lazy navigation from the user record.
type ExpenseLister interface {
	GetUserExpenses(ownerID string) ([]domain.Expense, error)
}

type Handler struct {
	userService Service
	expenses    ExpenseLister
}

func NewHandler(userService Service, expenses ExpenseLister) *Handler {
	return &Handler{
		userService: userService,
		expenses:    expenses,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type profileResponse struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Expenses []domain.Expense `json:"expenses"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		} else if errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrPasswordRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not fetch user data")
		return
	}

	expenses, err := h.expenses.GetUserExpenses(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not fetch user expenses")
		return
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	respondJSON(w, http.StatusOK, profileResponse{
		ID:       user.ID,
		Email:    user.Email,
		Expenses: expenses,
	})
}
