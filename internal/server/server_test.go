package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/events"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := memory.New()
	srv := New(
		ledger.NewPoster(st, events.Noop{}),
		ledger.NewQuery(st),
		config.Default().Accounts,
	)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postTransaction(t *testing.T, ts *httptest.Server, description, amount, debit, credit string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"description":    description,
		"amount":         amount,
		"debit_account":  debit,
		"credit_account": credit,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/transactions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func errorCode(t *testing.T, payload map[string]any) string {
	t.Helper()
	errObj, ok := payload["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %v", payload)
	return errObj["code"].(string)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody(t, resp)["status"])
}

func TestPostTransaction(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Sold Widget", "100", "Cash", "Sales Revenue")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.NotEmpty(t, payload["transaction_id"])
}

func TestPostTransaction_InvalidAmount(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Bad", "abc", "Cash", "Sales Revenue")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_amount", errorCode(t, decodeBody(t, resp)))
}

func TestPostTransaction_NonPositiveAmount(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Bad", "-5", "Cash", "Sales Revenue")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "non_positive_amount", errorCode(t, decodeBody(t, resp)))
}

func TestPostTransaction_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/transactions", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_body", errorCode(t, decodeBody(t, resp)))
}

func TestListAccounts(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Sold Widget", "100", "Cash", "Sales Revenue")
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/accounts")
	require.NoError(t, err)
	payload := decodeBody(t, resp)

	accounts, ok := payload["accounts"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Cash", "Sales Revenue"}, accounts)
	assert.NotEmpty(t, payload["suggested_debit"])
	assert.NotEmpty(t, payload["suggested_credit"])
}

func TestLedger(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Sold Widget", "100", "Cash", "Sales Revenue")
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/ledger?account=Cash")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload := decodeBody(t, resp)

	assert.Equal(t, "Cash", payload["account"])
	entries, ok := payload["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)

	entry := entries[0].(map[string]any)
	assert.Equal(t, "Debit", entry["category"])
	assert.Equal(t, "100", entry["debit"])
	assert.Equal(t, "100.00", payload["formatted_balance"])
}

func TestLedger_MissingAccountParam(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ledger")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_parameter", errorCode(t, decodeBody(t, resp)))
}

func TestJournal(t *testing.T) {
	ts := newTestServer(t)

	resp := postTransaction(t, ts, "Sold Widget", "100", "Cash", "Sales Revenue")
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/journal")
	require.NoError(t, err)
	payload := decodeBody(t, resp)

	entries, ok := payload["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)
	assert.Equal(t, "0", payload["integrity_check"])
}

func TestTrialBalance(t *testing.T) {
	ts := newTestServer(t)

	for _, p := range [][4]string{
		{"Sold Widget", "100", "Cash", "Sales Revenue"},
		{"Office rent", "40", "Rent Expense", "Cash"},
	} {
		resp := postTransaction(t, ts, p[0], p[1], p[2], p[3])
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/trial-balance")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload := decodeBody(t, resp)

	assert.Equal(t, true, payload["balanced"])
	assert.Equal(t, "$100.00", payload["formatted_total_debit"])
	assert.Equal(t, "$100.00", payload["formatted_total_credit"])

	rows, ok := payload["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 3)

	first := rows[0].(map[string]any)
	assert.Equal(t, "Cash", first["account"])
	assert.Equal(t, "60.00", first["formatted_debit"])
}

func TestTrialBalance_EmptyJournal(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/trial-balance")
	require.NoError(t, err)
	payload := decodeBody(t, resp)

	assert.Equal(t, true, payload["balanced"])
	rows, ok := payload["rows"].([]any)
	require.True(t, ok)
	assert.Empty(t, rows)
}
