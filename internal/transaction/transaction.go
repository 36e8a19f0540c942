package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the kind of business transaction.
type Type string

const (
	TypeSale     Type = "sale"
	TypePurchase Type = "purchase"
	TypePayroll  Type = "payroll"
)

// Status represents the lifecycle state of a transaction. Imported
// drafts are reviewed before they are confirmed and become exportable.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
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

// Transaction represents one business transaction of the restaurant.
// AmountHT is the net amount in euro cents; VATAmount carries the tax,
// also in cents.
type Transaction struct {
	ID             uuid.UUID
	Type           Type
	Status         Status
	Description    string
	RawDescription string
	Date           time.Time
	AmountHT       int64
	VATRate        decimal.Decimal
	VATAmount      int64
	PaymentMethod  PaymentMethod
	Category       Category
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}
