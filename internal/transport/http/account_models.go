package http

import (
	"time"

	"github.com/averoza/account-api/internal/domain"
)

// SignUpRequest carries the registration fields.
type SignUpRequest struct {
	Name        string `json:"name" example:"Jane Doe"`
	Email       string `json:"email" example:"jane@example.com"`
	Password    string `json:"password" example:"password1"`
	DateOfBirth string `json:"dateOfBirth" example:"1990-01-01"`
}

// SignInRequest carries the credential fields.
type SignInRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"password1"`
}

// PasswordResetRequest asks for a reset link mailed to the account owner.
// RedirectURL is the caller-supplied base the link is built on.
type PasswordResetRequest struct {
	Email       string `json:"email" example:"jane@example.com"`
	RedirectURL string `json:"redirectUrl" example:"https://app.example.com/reset"`
}

// PasswordResetConfirmRequest consumes a reset token.
type PasswordResetConfirmRequest struct {
	UserID      string `json:"userId" example:"64f1c0ffee0000000000abcd"`
	ResetString string `json:"resetString"`
	NewPassword string `json:"newPassword" example:"newpassword1"`
}

// AccountPayload is the sanitized account representation returned by sign-in.
// Hash and salt never appear here.
type AccountPayload struct {
	ID          string    `json:"id" example:"64f1c0ffee0000000000abcd"`
	Name        string    `json:"name" example:"Jane Doe"`
	Email       string    `json:"email" example:"jane@example.com"`
	DateOfBirth time.Time `json:"dateOfBirth" example:"1990-01-01T00:00:00Z"`
	Verified    bool      `json:"verified" example:"true"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-01T12:00:00Z"`
}

func accountPayload(account *domain.Account) AccountPayload {
	return AccountPayload{
		ID:          account.ID.Hex(),
		Name:        account.Name,
		Email:       account.Email,
		DateOfBirth: account.DateOfBirth,
		Verified:    account.Verified,
		CreatedAt:   account.CreatedAt,
	}
}
