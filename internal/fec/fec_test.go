package fec

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "JournalCode\tJournalLib\tEcritureNum\tEcritureDate\t" +
	"CompteNum\tCompteLib\tCompAuxNum\tCompAuxLib\t" +
	"PieceRef\tPieceDate\tEcritureLib\tDebit\tCredit\t" +
	"EcritureLet\tDateLet\tValidDate\tMontantdevise\tIdevise"

func TestGenerate_HeaderOnlyForEmptyInput(t *testing.T) {
	got, err := Generate(nil, Period{}, Company{})
	require.NoError(t, err)
	assert.Equal(t, wantHeader, got)
}

func TestGenerate_SingleSale(t *testing.T) {
	txs := []Transaction{
		{
			ID:            "T1",
			Date:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Type:          TypeSale,
			Description:   "Service midi",
			AmountHT:      10000,
			VATRate:       decimal.NewFromInt(10),
			VATAmount:     1000,
			PaymentMethod: PaymentCash,
			Category:      CategoryFood,
		},
	}

	got, err := Generate(txs, Period{}, Company{})
	require.NoError(t, err)

	want := wantHeader + "\n" +
		"VE\tVentes\t000001\t20260115\t530000\tCaisse\t\t\tFAC-T1\t20260115\tService midi\t110.00\t\t\t\t20260115\t\tEUR\n" +
		"VE\tVentes\t000001\t20260115\t707100\tVentes nourriture sur place\t\t\tFAC-T1\t20260115\tService midi\t\t100.00\t\t\t20260115\t\tEUR\n" +
		"VE\tVentes\t000001\t20260115\t445710\tTVA collectée 10%\t\t\tFAC-T1\t20260115\tTVA 10% sur Service midi\t\t10.00\t\t\t20260115\t\tEUR"
	assert.Equal(t, want, got)
}

func TestGenerate_EveryRowHas18Columns(t *testing.T) {
	txs := []Transaction{
		{
			ID: "T1", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Type: TypeSale,
			Description: "Brunch", AmountHT: 4250, VATRate: decimal.NewFromInt(10),
			VATAmount: 425, PaymentMethod: PaymentCard, Category: CategoryTakeaway,
		},
		{
			ID: "P1", Date: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), Type: TypePurchase,
			Description: "Cave à vins", AmountHT: 20000, VATRate: decimal.NewFromInt(20),
			VATAmount: 4000,
		},
	}

	got, err := Generate(txs, Period{}, Company{})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 7)

	for i, line := range lines {
		assert.Len(t, strings.Split(line, "\t"), 18, "line %d", i)
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	txs := []Transaction{
		{
			ID: "T1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Type: TypeSale,
			Description: "Menu du jour", AmountHT: 1850, VATRate: decimal.NewFromInt(10),
			VATAmount: 185, PaymentMethod: PaymentCash,
		},
	}

	first, err := Generate(txs, Period{}, Company{})
	require.NoError(t, err)

	second, err := Generate(txs, Period{}, Company{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_StopsOnPayroll(t *testing.T) {
	txs := []Transaction{
		{ID: "S1", Date: time.Now(), Type: TypePayroll, AmountHT: 250000},
	}

	_, err := Generate(txs, Period{}, Company{})
	assert.ErrorIs(t, err, ErrPayrollNotSupported)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "42.50", formatAmount(4250))
	assert.Equal(t, "0.05", formatAmount(5))
	assert.Equal(t, "120.00", formatAmount(12000))
	assert.Empty(t, formatAmount(0))
	assert.Empty(t, formatAmount(-100))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		siret   string
		endDate time.Time
		want    string
	}{
		{
			name:    "FullSiret",
			siret:   "12345678900012",
			endDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			want:    "123456789FEC20260131.txt",
		},
		{
			name:    "ExactSiren",
			siret:   "987654321",
			endDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			want:    "987654321FEC20251231.txt",
		},
		{
			name:    "ShortSiretUsedAsIs",
			siret:   "1234",
			endDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
			want:    "1234FEC20260630.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.siret, tt.endDate))
		})
	}
}

// Filename uses the date's own calendar fields, so two times naming the
// same instant in different zones may legitimately produce different
// names. Pin the chosen behavior.
func TestFilename_UsesLocalCalendarDate(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	late := time.Date(2026, 1, 31, 23, 30, 0, 0, paris)

	assert.Equal(t, "123456789FEC20260131.txt", Filename("12345678900012", late))
	assert.Equal(t, "123456789FEC20260131.txt", Filename("12345678900012", late.In(paris)))
}
