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

func GetCategories(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	var categories []model.Category
	if err := database.DB.
		Preload("Products").
		Where("business_id = ?", businessId).
		Order("sort_order asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("CreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.Category
	copier.Copy(&category, &input)
	category.BusinessId = businessId
	category.Active = true

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a categoria", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	categoryId, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("EditCategory").(model.EditCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.Category
	if err := database.DB.Where("id = ? AND business_id = ?", categoryId, businessId).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Categoria não encontrada", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar a categoria", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	categoryId, _ := c.Locals("inputId").(int)

	var count int64
	database.DB.Model(&model.Product{}).Where("category_id = ?", categoryId).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Categoria possui produtos, remova-os primeiro", nil)
	}

	result := database.DB.Where("id = ? AND business_id = ?", categoryId, businessId).Delete(&model.Category{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível remover a categoria", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Categoria não encontrada", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": categoryId})
}
