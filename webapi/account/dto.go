package account

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
)

// CreateAccountRequest is the body of POST /accounts.
type CreateAccountRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=100"`
	Type           string   `json:"type" validate:"required,oneof=CASH BANK CREDIT INVESTMENT CRYPTO OTHER"`
	Currency       string   `json:"currency" validate:"required,len=3,alpha"`
	BalanceInitial *float64 `json:"balanceInitial,omitempty" validate:"omitempty,gte=-999999999999.99,lte=999999999999.99"`
}

// UpdateAccountRequest is the body of PATCH /accounts/{id}.
type UpdateAccountRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type           *string  `json:"type,omitempty" validate:"omitempty,oneof=CASH BANK CREDIT INVESTMENT CRYPTO OTHER"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	BalanceInitial *float64 `json:"balanceInitial,omitempty" validate:"omitempty,gte=-999999999999.99,lte=999999999999.99"`
}

// NonNullFields lists the fields a patch may omit but not null out.
func (r *UpdateAccountRequest) NonNullFields() []string {
	return []string{"name", "type", "currency", "balanceInitial"}
}

// AccountResponse is the JSON shape of an account.
type AccountResponse struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"userId"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	Currency       string      `json:"currency"`
	BalanceInitial json.Number `json:"balanceInitial" swaggertype:"number" example:"100.00"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (r *CreateAccountRequest) toCommand() dto.AccountCommand {
	cmd := dto.AccountCommand{
		Name:     r.Name,
		Type:     domain.AccountType(r.Type),
		Currency: r.Currency,
	}
	if r.BalanceInitial != nil {
		cmd.BalanceInitial = *r.BalanceInitial
	}
	return cmd
}

func (r *UpdateAccountRequest) toPatch() dto.AccountPatch {
	patch := dto.AccountPatch{
		Name:           r.Name,
		Currency:       r.Currency,
		BalanceInitial: r.BalanceInitial,
	}
	if r.Type != nil {
		t := domain.AccountType(*r.Type)
		patch.Type = &t
	}
	return patch
}

func toResponse(a *dto.AccountRead) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           string(a.Type),
		Currency:       a.Currency,
		BalanceInitial: json.Number(domain.FormatAmount(a.BalanceInitial)),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toResponses(accounts []*dto.AccountRead) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toResponse(a))
	}
	return out
}
