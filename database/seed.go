package database

import (
	"cardapio_digital/constants"
	"cardapio_digital/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.Account{
		Username: "admin",
		Email:    "admin@cardapiodigital.com.br",
		Password: hashPassword,
		Role:     constants.ROLE_ADMIN,
		Active:   true,
	}
	if err := db.Where(model.Account{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed data for account:", admin.Username, "error:", err)
	}

	// Estabelecimento de demonstração com cardápio mínimo
	var count int64
	db.Model(&model.Business{}).Count(&count)
	if count > 0 {
		return
	}

	business := model.Business{
		Name:              "Pizzaria do Bairro",
		Slug:              "pizzaria-do-bairro",
		Phone:             "(11) 99999-0000",
		Whatsapp:          "5511999990000",
		IsOpen:            true,
		AutoApproveOrders: false,
	}
	if err := db.Create(&business).Error; err != nil {
		log.Println("failed to seed demo business:", err)
		return
	}

	category := model.Category{BusinessId: business.ID, Name: "Pizzas", SortOrder: 1, Active: true}
	db.Create(&category)

	group := model.AddonGroup{BusinessId: business.ID, Name: "Bordas", MinSelection: 0, MaxSelection: 1}
	db.Create(&group)
	db.Create(&model.Addon{AddonGroupId: group.ID, Name: "Borda de catupiry", Price: 8})
	db.Create(&model.Addon{AddonGroupId: group.ID, Name: "Borda de cheddar", Price: 8})

	product := model.Product{
		BusinessId: business.ID,
		CategoryId: category.ID,
		Name:       "Pizza Margherita",
		Price:      50,
		Active:     true,
	}
	db.Create(&product)
	db.Model(&product).Association("AddonGroups").Append(&group)

	zones := []model.DeliveryZone{
		{BusinessId: business.ID, NeighborhoodName: "Centro", Fee: 5},
		{BusinessId: business.ID, NeighborhoodName: "Jardim América", Fee: 8},
	}
	for _, zone := range zones {
		db.Create(&zone)
	}
}
