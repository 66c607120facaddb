package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/dto"
)

// UpdateMeInput represents the request body for PATCH /me.
type UpdateMeInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

// MeResponse is the caller's profile. The password hash is never exposed.
type MeResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toMeResponse(u *dto.UserRead) *MeResponse {
	return &MeResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
