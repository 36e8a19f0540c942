package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/export"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

func newTestHandler(t *testing.T, txs []*transaction.Transaction) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(txs, nil).AnyTimes()

	svc := export.NewService(
		transaction.NewService(repo),
		fec.Company{Name: "Le Petit Poucet", SIRET: "12345678900012"},
	)

	router := chi.NewRouter()
	NewHandler(svc).Routes(router)

	return router
}

func TestHandler_Download(t *testing.T) {
	txs := []*transaction.Transaction{
		{
			ID: uuid.New(), Type: transaction.TypeSale, Status: transaction.StatusConfirmed,
			Description: "Service du midi", Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			AmountHT: 20000, VATRate: decimal.NewFromInt(10), VATAmount: 2000,
			PaymentMethod: transaction.PaymentCard, Category: transaction.CategoryFood,
		},
	}

	body := `{"start_date":"2026-01-01T00:00:00Z","end_date":"2026-01-31T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/fec/download", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler(t, txs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="123456789FEC20260131.txt"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "JournalCode\t"))
	assert.True(t, strings.HasPrefix(lines[1], "VE\tVentes\t000001\t20260110\t"))
}

func TestHandler_Metadata(t *testing.T) {
	txs := []*transaction.Transaction{
		{
			ID: uuid.New(), Type: transaction.TypeSale, Status: transaction.StatusConfirmed,
			Description: "Service du soir", Date: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			AmountHT: 15000, VATRate: decimal.NewFromInt(20), VATAmount: 3000,
			PaymentMethod: transaction.PaymentCash, Category: transaction.CategoryDrinks,
		},
	}

	body := `{"start_date":"2026-01-01T00:00:00Z","end_date":"2026-01-31T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/fec", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler(t, txs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"filename":"123456789FEC20260131.txt"`)
	assert.Contains(t, rec.Body.String(), `"transactions":1`)
	assert.Contains(t, rec.Body.String(), `"lines":3`)
}

func TestHandler_MissingEndDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/fec", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newTestHandler(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PayrollRejected(t *testing.T) {
	txs := []*transaction.Transaction{
		{
			ID: uuid.New(), Type: transaction.TypePayroll, Status: transaction.StatusConfirmed,
			Description: "Salaires janvier", Date: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			AmountHT: 500000,
		},
	}

	body := `{"start_date":"2026-01-01T00:00:00Z","end_date":"2026-01-31T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/fec/download", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler(t, txs).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
