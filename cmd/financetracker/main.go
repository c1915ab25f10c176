package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/sgorski00/finance-tracker/db"
	"github.com/sgorski00/finance-tracker/internal/auth"
	"github.com/sgorski00/finance-tracker/internal/finance/application"
	"github.com/sgorski00/finance-tracker/internal/finance/infrastructure"
	"github.com/sgorski00/finance-tracker/internal/finance/interfaces"
	"github.com/sgorski00/finance-tracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router          *http.ServeMux
	authHandler     *auth.Handler
	authService     auth.Service
	userHandler     *user.Handler
	expenseHandler  *interfaces.ExpenseHandler
	categoryHandler *interfaces.CategoryHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	expenseHandler *interfaces.ExpenseHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		authHandler:     authHandler,
		authService:     authService,
		userHandler:     userHandler,
		expenseHandler:  expenseHandler,
		categoryHandler: categoryHandler,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	// no insecure built-in defaults: a missing signing key aborts startup
	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, Response{Message: "Finance tracker API is up and running"})
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()
	protected := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	mux.Handle("GET /{$}", http.HandlerFunc(handleRoot))
	mux.Handle("POST /users/{$}", http.HandlerFunc(s.userHandler.HandleRegister))
	mux.Handle("POST /login", http.HandlerFunc(s.authHandler.HandleLogin))

	// Protected routes (JWT access token middleware)
	mux.Handle("POST /users/me", protected(http.HandlerFunc(s.userHandler.HandleGetMe)))

	mux.Handle("POST /expenses/{$}", protected(http.HandlerFunc(s.expenseHandler.CreateExpense)))
	mux.Handle("GET /expenses/{$}", protected(http.HandlerFunc(s.expenseHandler.GetUserExpenses)))
	mux.Handle("GET /expenses/summary", protected(http.HandlerFunc(s.expenseHandler.GetExpenseSummary)))
	mux.Handle("PUT /expenses/{id}", protected(http.HandlerFunc(s.expenseHandler.UpdateExpense)))
	mux.Handle("DELETE /expenses/{id}", protected(http.HandlerFunc(s.expenseHandler.DeleteExpense)))

	mux.Handle("POST /categories/{$}", protected(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mux.Handle("GET /categories/{$}", protected(http.HandlerFunc(s.categoryHandler.GetUserCategories)))
	mux.Handle("PUT /categories/{id}", protected(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	mux.Handle("DELETE /categories/{id}", protected(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mux
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Could not ensure database schema: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)

	jwtManager := auth.NewJWTManager()
	userService := user.NewUserService(userRepo)
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryService := application.NewCategoryService(categoryRepo)
	expenseService := application.NewExpenseService(expenseRepo, categoryService)

	userHandler := user.NewHandler(userService, expenseService)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, expenseHandler, categoryHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
