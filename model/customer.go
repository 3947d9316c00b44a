package model

// CustomerProfile é um perfil de conveniência por (telefone, estabelecimento).
// Não é uma conta autenticada — serve só para reconhecer o cliente que volta.
type CustomerProfile struct {
	DTO
	BusinessId uint   `gorm:"uniqueIndex:idx_profile_phone;not null" json:"businessId"`
	Phone      string `gorm:"uniqueIndex:idx_profile_phone;not null" json:"phone"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// CustomerAddress é escopado por (telefone, slug do estabelecimento):
// os endereços salvos de um cliente não são globais.
type CustomerAddress struct {
	DTO
	CustomerPhone string `gorm:"index:idx_addr_phone_slug;not null" json:"customerPhone"`
	BusinessSlug  string `gorm:"index:idx_addr_phone_slug;not null" json:"businessSlug"`
	Address       string `gorm:"not null" json:"address"`
	Neighborhood  string `json:"neighborhood"`
	AddressLabel  string `json:"addressLabel"`
	IsDefault     bool   `gorm:"default:false" json:"isDefault"`
}

type SaveAddressInput struct {
	CustomerPhone string `validate:"required" json:"customerPhone"`
	Address       string `validate:"required" json:"address"`
	Neighborhood  string `json:"neighborhood"`
	AddressLabel  string `json:"addressLabel"`
	IsDefault     bool   `json:"isDefault"`
}
