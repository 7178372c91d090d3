package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, frontendOrigin string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(frontendOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Post("/register", handlers.Register(pool))
	r.Post("/login", handlers.Login(pool))
	r.Get("/refresh", handlers.Refresh(pool))
	r.Post("/logout", handlers.Logout())

	// Protected routes
	r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
		r.Post("/addIncome", handlers.AddIncome(pool))
		r.Post("/addExpense", handlers.AddExpense(pool))
		r.Get("/getTransactions", handlers.GetTransactions(pool))
		r.Get("/expenseByCategory", handlers.ExpenseByCategory(pool))
		r.Get("/transactionsByMonth", handlers.TransactionsByMonth(pool))
	})

	return r
}
