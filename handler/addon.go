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

func GetAddonGroups(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	var groups []model.AddonGroup
	if err := database.DB.
		Preload("Addons").
		Where("business_id = ?", businessId).
		Find(&groups).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, groups)
}

func CreateAddonGroup(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("CreateAddonGroup").(model.CreateAddonGroupInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if input.MaxSelection > 0 && input.MinSelection > input.MaxSelection {
		return utils.FieldErrorResponse(c, "Seleção mínima não pode exceder a máxima", "minSelection")
	}

	var group model.AddonGroup
	copier.Copy(&group, &input)
	group.BusinessId = businessId

	if err := database.DB.Create(&group).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o grupo de adicionais", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, group)
}

func CreateAddon(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("CreateAddon").(model.CreateAddonInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var group model.AddonGroup
	if err := database.DB.Where("id = ? AND business_id = ?", input.AddonGroupId, businessId).First(&group).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Grupo de adicionais não encontrado", err)
	}

	var addon model.Addon
	copier.Copy(&addon, &input)

	if err := database.DB.Create(&addon).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o adicional", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, addon)
}

func DeleteAddon(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	addonId, _ := c.Locals("inputId").(int)

	result := database.DB.
		Where("id = ? AND addon_group_id IN (SELECT id FROM addon_groups WHERE business_id = ?)", addonId, businessId).
		Delete(&model.Addon{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível remover o adicional", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Adicional não encontrado", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": addonId})
}
