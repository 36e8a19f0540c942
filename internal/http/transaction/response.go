package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

type transactionResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Type           transaction.Type          `json:"type"`
	Status         transaction.Status        `json:"status"`
	Description    string                    `json:"description"`
	RawDescription string                    `json:"raw_description,omitempty"`
	Date           time.Time                 `json:"date"`
	AmountHT       int64                     `json:"amount_ht"`
	VATRate        decimal.Decimal           `json:"vat_rate"`
	VATAmount      int64                     `json:"vat_amount"`
	PaymentMethod  transaction.PaymentMethod `json:"payment_method,omitempty"`
	Category       transaction.Category      `json:"category,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      *time.Time                `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:             tx.ID,
		Type:           tx.Type,
		Status:         tx.Status,
		Description:    tx.Description,
		RawDescription: tx.RawDescription,
		Date:           tx.Date,
		AmountHT:       tx.AmountHT,
		VATRate:        tx.VATRate,
		VATAmount:      tx.VATAmount,
		PaymentMethod:  tx.PaymentMethod,
		Category:       tx.Category,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
