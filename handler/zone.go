package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetDeliveryZones(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	var zones []model.DeliveryZone
	if err := database.DB.
		Where("business_id = ?", businessId).
		Order("neighborhood_name asc").
		Find(&zones).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zones)
}

func CreateDeliveryZone(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("CreateDeliveryZone").(model.CreateDeliveryZoneInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	// Bairros são buscados por igualdade sem caixa; evita duplicatas
	var count int64
	database.DB.Model(&model.DeliveryZone{}).
		Where("business_id = ? AND LOWER(neighborhood_name) = LOWER(?)", businessId, input.NeighborhoodName).
		Count(&count)
	if count > 0 {
		return utils.FieldErrorResponse(c, "Bairro já cadastrado", "neighborhoodName")
	}

	var zone model.DeliveryZone
	copier.Copy(&zone, &input)
	zone.BusinessId = businessId

	if err := database.DB.Create(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a zona de entrega", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, zone)
}

func EditDeliveryZone(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	zoneId, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("EditDeliveryZone").(model.EditDeliveryZoneInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var zone model.DeliveryZone
	if err := database.DB.Where("id = ? AND business_id = ?", zoneId, businessId).First(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Zona de entrega não encontrada", err)
	}

	if input.NeighborhoodName != nil {
		zone.NeighborhoodName = *input.NeighborhoodName
	}
	if input.Fee != nil {
		zone.Fee = *input.Fee
	}

	if err := database.DB.Save(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar a zona de entrega", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zone)
}

func DeleteDeliveryZone(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	zoneId, _ := c.Locals("inputId").(int)

	result := database.DB.Where("id = ? AND business_id = ?", zoneId, businessId).Delete(&model.DeliveryZone{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível remover a zona de entrega", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Zona de entrega não encontrada", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": zoneId})
}
