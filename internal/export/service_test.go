package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

// Handwritten repository stub; only List matters here.
type mockRepo struct {
	listTransactionsFunc func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

func (m *mockRepo) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status transaction.Status) error {
	return nil
}

func (m *mockRepo) UpdateCategory(ctx context.Context, id uuid.UUID, category transaction.Category) error {
	return nil
}

func (m *mockRepo) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	if m.listTransactionsFunc != nil {
		return m.listTransactionsFunc(ctx, filter)
	}

	return nil, nil
}

func (m *mockRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockRepo) BeginImport(ctx context.Context, minDate, maxDate time.Time) (transaction.ImportTx, error) {
	return nil, nil
}

func testCompany() fec.Company {
	return fec.Company{Name: "Le Petit Poucet", SIRET: "12345678900012"}
}

func testPeriod() fec.Period {
	return fec.Period{
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Generate(t *testing.T) {
	saleID := uuid.New()
	purchaseID := uuid.New()

	var gotFilter transaction.ListFilter

	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			gotFilter = filter

			return []*transaction.Transaction{
				{
					ID: saleID, Type: transaction.TypeSale, Status: transaction.StatusConfirmed,
					Description: "Service du soir", Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
					AmountHT: 10000, VATRate: decimal.NewFromInt(10), VATAmount: 1000,
					PaymentMethod: transaction.PaymentCash, Category: transaction.CategoryFood,
				},
				{
					ID: purchaseID, Type: transaction.TypePurchase, Status: transaction.StatusConfirmed,
					Description: "Metro", Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
					AmountHT: 5000, VATRate: decimal.NewFromInt(20), VATAmount: 1000,
				},
			}, nil
		},
	}

	svc := NewService(transaction.NewService(repo), testCompany())

	ex, err := svc.Generate(context.Background(), testPeriod())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if ex.Filename != "123456789FEC20260131.txt" {
		t.Errorf("unexpected filename %q", ex.Filename)
	}

	if ex.Transactions != 2 {
		t.Errorf("expected 2 transactions, got %d", ex.Transactions)
	}

	if len(ex.Entries) != 6 {
		t.Errorf("expected 6 entries, got %d", len(ex.Entries))
	}

	lines := strings.Split(string(ex.Content), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header + 6 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[0], "JournalCode\t") {
		t.Errorf("first line is not the header: %q", lines[0])
	}

	if !strings.Contains(lines[1], "FAC-"+saleID.String()) {
		t.Errorf("sale piece reference missing from %q", lines[1])
	}

	if gotFilter.Status == nil || *gotFilter.Status != transaction.StatusConfirmed {
		t.Errorf("expected confirmed-only filter, got %+v", gotFilter.Status)
	}

	if gotFilter.StartDate == nil || gotFilter.EndDate == nil {
		t.Errorf("expected period date filter, got %+v", gotFilter)
	}
}

func TestService_Generate_EmptyPeriod(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(transaction.NewService(repo), testCompany())

	ex, err := svc.Generate(context.Background(), testPeriod())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if ex.Transactions != 0 || len(ex.Entries) != 0 {
		t.Errorf("expected empty export, got %+v", ex)
	}

	if strings.Contains(string(ex.Content), "\n") {
		t.Errorf("header-only document expected, got %q", ex.Content)
	}
}

func TestService_Generate_PayrollFails(t *testing.T) {
	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: uuid.New(), Type: transaction.TypePayroll, Status: transaction.StatusConfirmed, Date: time.Now(), AmountHT: 250000},
			}, nil
		},
	}

	svc := NewService(transaction.NewService(repo), testCompany())

	_, err := svc.Generate(context.Background(), testPeriod())
	if err == nil {
		t.Fatal("expected payroll generation to fail")
	}
}

func TestService_WriteFile(t *testing.T) {
	svc := NewService(nil, testCompany())

	ex := &Export{
		Filename: "123456789FEC20260131.txt",
		Content:  []byte("JournalCode\ttest"),
	}

	dir := filepath.Join(t.TempDir(), "exports")

	path, err := svc.WriteFile(ex, dir)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if filepath.Base(path) != ex.Filename {
		t.Errorf("unexpected path %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	if string(content) != "JournalCode\ttest" {
		t.Errorf("file content mismatch: %q", content)
	}
}

func TestService_Summary(t *testing.T) {
	ex := &Export{
		Filename:     "123456789FEC20260131.txt",
		Transactions: 2,
		Entries: []fec.Entry{
			{JournalCode: "VE", JournalLib: "Ventes", EcritureNum: "000001", Debit: 11000},
			{JournalCode: "VE", JournalLib: "Ventes", EcritureNum: "000001", Credit: 10000},
			{JournalCode: "VE", JournalLib: "Ventes", EcritureNum: "000001", Credit: 1000},
			{JournalCode: "AC", JournalLib: "Achats", EcritureNum: "000002", Debit: 6000},
			{JournalCode: "AC", JournalLib: "Achats", EcritureNum: "000002", Credit: 6000},
		},
	}

	svc := NewService(nil, testCompany())
	summary := svc.Summary(ex)

	for _, want := range []string{
		"123456789FEC20260131.txt: 2 transactions, 5 lignes",
		"VE (Ventes) | 1 écritures | débit 110.00 € | crédit 110.00 €",
		"AC (Achats) | 1 écritures | débit 60.00 € | crédit 60.00 €",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
