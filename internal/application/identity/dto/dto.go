package dto

import (
	"time"

	"helpdesk/internal/domain/identity"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserDTO(u *identity.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		Role:        u.EffectiveRole().String(),
		IsStaff:     u.IsStaff(),
		IsSuperuser: u.IsSuperuser(),
		CreatedAt:   u.CreatedAt(),
	}
}
