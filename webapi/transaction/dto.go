package transaction

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/webapi/common"
)

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	AccountID   string   `json:"accountId" validate:"required,uuid"`
	Type        string   `json:"type" validate:"required,oneof=EXPENSE INCOME TRANSFER"`
	Amount      *float64 `json:"amount" validate:"required,gte=-999999999999.99,lte=999999999999.99"`
	Currency    string   `json:"currency" validate:"required,len=3,alpha"`
	OccurredAt  string   `json:"occurredAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2024-01-31T12:00:00Z"`
	Description *string  `json:"description,omitempty"`
	Note        *string  `json:"note,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	PayeeID     *string  `json:"payeeId,omitempty" validate:"omitempty,uuid"`
}

// UpdateTransactionRequest is the body of PATCH /transactions/{id}.
// Every field is optional; accountId is accepted by the schema but may not change.
type UpdateTransactionRequest struct {
	AccountID   *string  `json:"accountId,omitempty" validate:"isdefault"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=EXPENSE INCOME TRANSFER"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gte=-999999999999.99,lte=999999999999.99"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	OccurredAt  *string  `json:"occurredAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Description *string  `json:"description,omitempty"`
	Note        *string  `json:"note,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	PayeeID     *string  `json:"payeeId,omitempty" validate:"omitempty,uuid"`
}

// TransactionResponse is the JSON shape of a stored transaction.
type TransactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	AccountID   uuid.UUID   `json:"accountId"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount" swaggertype:"number" example:"12.35"`
	Currency    string      `json:"currency"`
	OccurredAt  time.Time   `json:"occurredAt"`
	Description *string     `json:"description"`
	Note        *string     `json:"note"`
	CategoryID  *uuid.UUID  `json:"categoryId"`
	PayeeID     *uuid.UUID  `json:"payeeId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (r *CreateTransactionRequest) toCommand() dto.TransactionCommand {
	accountID, _ := uuid.Parse(r.AccountID)
	return dto.TransactionCommand{
		AccountID:   accountID,
		Type:        domain.TransactionType(r.Type),
		Amount:      *r.Amount,
		Currency:    r.Currency,
		OccurredAt:  parseTimestamp(r.OccurredAt),
		Description: r.Description,
		Note:        r.Note,
		CategoryID:  common.ParseOptionalUUID(r.CategoryID),
		PayeeID:     common.ParseOptionalUUID(r.PayeeID),
	}
}

func (r *UpdateTransactionRequest) toPatch() dto.TransactionPatch {
	patch := dto.TransactionPatch{
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		Note:        r.Note,
		CategoryID:  common.ParseOptionalUUID(r.CategoryID),
		PayeeID:     common.ParseOptionalUUID(r.PayeeID),
	}
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		patch.Type = &t
	}
	if r.OccurredAt != nil {
		at := parseTimestamp(*r.OccurredAt)
		patch.OccurredAt = &at
	}
	return patch
}

// NonNullFields lists the fields a patch may omit but not null out.
func (r *UpdateTransactionRequest) NonNullFields() []string {
	return []string{"accountId", "type", "amount", "currency", "occurredAt"}
}

// parseTimestamp reads an occurredAt value that already passed validation.
func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func toResponse(tx *dto.TransactionRead) *TransactionResponse {
	if tx == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		AccountID:   tx.AccountID,
		Type:        string(tx.Type),
		Amount:      json.Number(domain.FormatAmount(tx.Amount)),
		Currency:    tx.Currency,
		OccurredAt:  tx.OccurredAt,
		Description: tx.Description,
		Note:        tx.Note,
		CategoryID:  tx.CategoryID,
		PayeeID:     tx.PayeeID,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponses(txs []*dto.TransactionRead) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	return out
}
