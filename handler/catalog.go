package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"cardapio_digital/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetBusinessBySlug é o cardápio público: categorias, produtos ativos,
// grupos de adicionais, bairros atendidos e o essencial das configurações
func GetBusinessBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var business model.Business
	if err := database.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("sort_order asc")
		}).
		Preload("Categories.Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true)
		}).
		Preload("Categories.Products.AddonGroups").
		Preload("Categories.Products.AddonGroups.Addons").
		Preload("DeliveryZones").
		Where("slug = ?", slug).
		First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       business.ID,
		"name":     business.Name,
		"slug":     business.Slug,
		"logoUrl":  business.LogoUrl,
		"whatsapp": business.Whatsapp,
		"settings": fiber.Map{
			"isOpen":            business.IsOpen,
			"autoApproveOrders": business.AutoApproveOrders,
			"minOrderValue":     business.MinOrderValue,
			"mpPublicKey":       business.MPPublicKey,
		},
		"categories":    business.Categories,
		"deliveryZones": business.DeliveryZones,
	})
}

// GetDeliveryZonesBySlug lista os bairros atendidos e suas taxas
func GetDeliveryZonesBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var business model.Business
	if err := database.DB.Where("slug = ?", slug).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	var zones []model.DeliveryZone
	if err := database.DB.
		Where("business_id = ?", business.ID).
		Order("neighborhood_name asc").
		Find(&zones).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zones)
}
