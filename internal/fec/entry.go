package fec

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the kind of business transaction being posted.
type TxType string

const (
	TypeSale     TxType = "sale"
	TypePurchase TxType = "purchase"
	TypePayroll  TxType = "payroll"
)

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentBank PaymentMethod = "bank"
)

// Category is the revenue category of a sale. Empty means on-site food.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryDrinks   Category = "drinks"
	CategoryTakeaway Category = "takeaway"
)

// Transaction is one business transaction to post. Amounts are in
// euro cents; VATAmount is expected to be consistent with
// AmountHT*VATRate/100 but is posted as given.
type Transaction struct {
	ID            string
	Date          time.Time
	Type          TxType
	Description   string
	AmountHT      int64
	VATRate       decimal.Decimal
	VATAmount     int64
	PaymentMethod PaymentMethod
	Category      Category
}

// Entry is one FEC row. Debit and Credit are cents; at most one of the
// two is non-zero. Reconciliation (EcritureLet/DateLet) and foreign
// currency amounts are not modeled and stay empty.
type Entry struct {
	JournalCode   string
	JournalLib    string
	EcritureNum   string
	EcritureDate  time.Time
	CompteNum     string
	CompteLib     string
	CompAuxNum    string
	CompAuxLib    string
	PieceRef      string
	PieceDate     time.Time
	EcritureLib   string
	Debit         int64
	Credit        int64
	EcritureLet   string
	DateLet       string
	ValidDate     time.Time
	MontantDevise string
	Idevise       string
}

const (
	journalSalesCode     = "VE"
	journalSalesLib      = "Ventes"
	journalPurchasesCode = "AC"
	journalPurchasesLib  = "Achats"
)

// ErrPayrollNotSupported is returned for payroll transactions: the
// payroll/social-charges posting split is not defined yet, and
// silently emitting zero rows would corrupt the export.
var ErrPayrollNotSupported = errors.New("payroll transactions are not yet supported")

// BuildEntries expands transactions into balanced ledger rows in input
// order. The écriture sequence number is threaded through the fold,
// advancing once per transaction regardless of how many rows it emits.
func BuildEntries(txs []Transaction) ([]Entry, error) {
	entries := make([]Entry, 0, len(txs)*3)

	for i, tx := range txs {
		var err error

		entries, err = appendEntries(entries, tx, i+1)
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func appendEntries(dst []Entry, tx Transaction, seq int) ([]Entry, error) {
	switch tx.Type {
	case TypeSale:
		return appendSale(dst, tx, seq), nil
	case TypePurchase:
		return appendPurchase(dst, tx, seq), nil
	case TypePayroll:
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, ErrPayrollNotSupported)
	default:
		return nil, fmt.Errorf("transaction %s: unknown transaction type %q", tx.ID, tx.Type)
	}
}

// appendSale posts a sale: the settlement account takes the gross
// amount, revenue takes the net, collected VAT takes the difference.
// Gross = net + VAT in integer cents, so the écriture balances exactly.
func appendSale(dst []Entry, tx Transaction, seq int) []Entry {
	num := formatSeq(seq)
	pieceRef := "FAC-" + tx.ID
	gross := tx.AmountHT + tx.VATAmount

	settlement := baseEntry(journalSalesCode, journalSalesLib, num, pieceRef, tx, settlementAccount(tx.PaymentMethod), tx.Description)
	settlement.Debit = gross

	revenue := baseEntry(journalSalesCode, journalSalesLib, num, pieceRef, tx, revenueAccount(tx.Category), tx.Description)
	revenue.Credit = tx.AmountHT

	vatLabel := fmt.Sprintf("TVA %s%% sur %s", tx.VATRate.String(), tx.Description)
	vat := baseEntry(journalSalesCode, journalSalesLib, num, pieceRef, tx, vatAccount(tx.VATRate), vatLabel)
	vat.Credit = tx.VATAmount

	return append(dst, settlement, revenue, vat)
}

// appendPurchase posts a supplier invoice: expenses and deductible VAT
// on the debit side, the supplier payable for the gross on the credit
// side. All purchases go to the food expense account and the single
// deductible-VAT account; per-category and per-rate purchase tracking
// is not modeled.
func appendPurchase(dst []Entry, tx Transaction, seq int) []Entry {
	num := formatSeq(seq)
	pieceRef := "ACH-" + tx.ID
	gross := tx.AmountHT + tx.VATAmount

	expense := baseEntry(journalPurchasesCode, journalPurchasesLib, num, pieceRef, tx, accFoodPurchases, tx.Description)
	expense.Debit = tx.AmountHT

	vat := baseEntry(journalPurchasesCode, journalPurchasesLib, num, pieceRef, tx, accVATDeductible, tx.Description)
	vat.Debit = tx.VATAmount

	payable := baseEntry(journalPurchasesCode, journalPurchasesLib, num, pieceRef, tx, accSuppliers, tx.Description)
	payable.Credit = gross

	return append(dst, expense, vat, payable)
}

func baseEntry(journalCode, journalLib, num, pieceRef string, tx Transaction, acc Account, label string) Entry {
	return Entry{
		JournalCode:  journalCode,
		JournalLib:   journalLib,
		EcritureNum:  num,
		EcritureDate: tx.Date,
		CompteNum:    acc.Code,
		CompteLib:    acc.Label,
		PieceRef:     pieceRef,
		PieceDate:    tx.Date,
		EcritureLib:  label,
		ValidDate:    tx.Date,
		Idevise:      "EUR",
	}
}

func formatSeq(seq int) string {
	return fmt.Sprintf("%06d", seq)
}
