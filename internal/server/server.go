// Package server exposes the ledger engine over HTTP. It is a thin
// JSON façade: all accounting rules live in internal/ledger.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/model"
)

// Server holds the handlers for the ledger API.
type Server struct {
	poster   *ledger.Poster
	query    *ledger.Query
	accounts config.AccountsConfig
}

// New creates a Server.
func New(poster *ledger.Poster, query *ledger.Query, accounts config.AccountsConfig) *Server {
	return &Server{poster: poster, query: query, accounts: accounts}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/transactions", s.handlePostTransaction)
	r.Get("/accounts", s.handleListAccounts)
	r.Get("/journal", s.handleJournal)
	r.Get("/ledger", s.handleLedger)
	r.Get("/trial-balance", s.handleTrialBalance)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type postTransactionRequest struct {
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
}

func (s *Server) handlePostTransaction(w http.ResponseWriter, r *http.Request) {
	var req postTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return
	}

	txID, err := s.poster.Post(r.Context(), req.Description, req.Amount, req.DebitAccount, req.CreditAccount)
	if err != nil {
		writePostError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"transaction_id": txID})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.query.ListAccounts(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accounts":         accounts,
		"suggested_debit":  s.accounts.Debit,
		"suggested_credit": s.accounts.Credit,
	})
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := s.query.AllEntries(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entries":         entryViews(entries),
		"integrity_check": ledger.IntegrityCheck(entries),
	})
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeJSONError(w, http.StatusBadRequest, "missing_parameter", "account is required")
		return
	}

	entries, err := s.query.EntriesForAccount(r.Context(), account)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	balance := ledger.AccountBalance(entries)
	writeJSON(w, http.StatusOK, map[string]any{
		"account":           account,
		"entries":           entryViews(entries),
		"balance":           balance,
		"formatted_balance": model.FormatAmount(balance),
	})
}

func (s *Server) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	tb, err := s.query.TrialBalance(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	rows := tb.Rows
	if rows == nil {
		rows = []model.TrialBalanceRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":                   rows,
		"total_debit":            tb.TotalDebit,
		"total_credit":           tb.TotalCredit,
		"formatted_total_debit":  tb.FormattedTotalDebit,
		"formatted_total_credit": tb.FormattedTotalCredit,
		"balanced":               tb.Balanced,
	})
}

type entryView struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Account       string          `json:"account"`
	Category      model.Category  `json:"category"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

func entryViews(entries []model.JournalEntry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, entryView{
			ID:            e.ID,
			TransactionID: e.TransactionID,
			Date:          e.DateString(),
			Description:   e.Description,
			Account:       e.Account,
			Category:      e.Category,
			Debit:         e.Debit,
			Credit:        e.Credit,
		})
	}
	return views
}

func writePostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		writeJSONError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, ledger.ErrNonPositiveAmount):
		writeJSONError(w, http.StatusBadRequest, "non_positive_amount", err.Error())
	case errors.Is(err, ledger.ErrStoreUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, ledger.ErrStoreUnavailable) {
		writeJSONError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, "server_error", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
