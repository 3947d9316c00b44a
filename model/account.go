package model

import "time"

// Account é a conta de acesso do painel (admin da plataforma,
// proprietário ou equipe do estabelecimento)
type Account struct {
	DTO
	Username   string    `gorm:"unique;not null" json:"username"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"not null" json:"role"` // ADMIN, OWNER, STAFF
	BusinessId *uint     `json:"businessId"`           // nulo para admin da plataforma
	Business   *Business `gorm:"foreignKey:BusinessId" json:"business,omitempty"`
	Active     bool      `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=6" json:"password"`
	Role     string `validate:"required" json:"role"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null" json:"accountId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Account   Account   `gorm:"foreignKey:AccountId" json:"account"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
