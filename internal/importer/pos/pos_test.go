package pos

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

const sampleExport = `Le Petit Poucet;;;;;;;
Export tickets du 01/01/2026 au 31/01/2026;;;;;;;
Date;Ticket;Désignation;Catégorie;Règlement;Montant HT;Taux TVA;Montant TVA
15/01/2026;0042;Menu du jour;Sur place;CB;18,50;10;1,85
15/01/2026;0043;Pression 50cl;Bar;ESP;4,17;20;0,83
16/01/2026;0051;Formule midi;VAE;CB;12,27;5,5;0,67
;;Total;;;34,94;;3,35
`

func TestParse(t *testing.T) {
	txs, err := New().Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	first := txs[0]
	assert.Equal(t, transaction.TypeSale, first.Type)
	assert.Equal(t, transaction.StatusDraft, first.Status)
	assert.Equal(t, "Menu du jour (ticket 0042)", first.Description)
	assert.Equal(t, "Menu du jour", first.RawDescription)
	assert.True(t, first.Date.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(1850), first.AmountHT)
	assert.Equal(t, "10", first.VATRate.String())
	assert.Equal(t, int64(185), first.VATAmount)
	assert.Equal(t, transaction.PaymentCard, first.PaymentMethod)
	assert.Equal(t, transaction.CategoryFood, first.Category)

	second := txs[1]
	assert.Equal(t, transaction.PaymentCash, second.PaymentMethod)
	assert.Equal(t, transaction.CategoryDrinks, second.Category)
	assert.Equal(t, int64(417), second.AmountHT)

	third := txs[2]
	assert.Equal(t, transaction.CategoryTakeaway, third.Category)
	assert.Equal(t, "5.5", third.VATRate.String())
}

func TestParse_UnknownLabelsFallBack(t *testing.T) {
	input := "Date;Ticket;Désignation;Catégorie;Règlement;Montant HT;Taux TVA;Montant TVA\n" +
		"15/01/2026;0001;Menu;Terrasse;CHQ;10,00;10;1,00\n"

	txs, err := New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, transaction.PaymentBank, txs[0].PaymentMethod)
	assert.Empty(t, txs[0].Category)
}

func TestParse_MissingDesignationFails(t *testing.T) {
	input := "Date;Ticket;Désignation;Catégorie;Règlement;Montant HT;Taux TVA;Montant TVA\n" +
		"15/01/2026;0001;;Bar;CB;10,00;10;1,00\n"

	_, err := New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParse_NoHeader(t *testing.T) {
	_, err := New().Parse(strings.NewReader("just;some;cells\n1;2;3\n"))
	assert.Error(t, err)
}

func TestParse_Windows1252Export(t *testing.T) {
	// Header with "Désignation"/"Catégorie"/"Règlement" encoded as
	// Windows-1252 (é = 0xE9, è = 0xE8).
	input := "Date;Ticket;D\xe9signation;Cat\xe9gorie;R\xe8glement;Montant HT;Taux TVA;Montant TVA\n" +
		"15/01/2026;0001;Caf\xe9;Bar;ESP;3,18;10;0,32\n"

	txs, err := New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Café", txs[0].RawDescription)
	assert.Equal(t, transaction.CategoryDrinks, txs[0].Category)
}
