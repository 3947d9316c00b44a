package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		businessId, err := helper.RequireBusinessId(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		var existing model.Category
		if err := database.DB.Where("business_id = ? AND LOWER(name) = LOWER(?)", businessId, input.Name).
			First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Já existe uma categoria com esse nome", nil, "name")
		}

		c.Locals("CreateCategory", input)
		return c.Next()
	}
}

func EditCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCategoryInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		c.Locals("EditCategory", input)
		return GetById(key)(c)
	}
}

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		businessId, err := helper.RequireBusinessId(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		// categoria precisa existir e pertencer ao mesmo estabelecimento
		var category model.Category
		if err := database.DB.Where("id = ? AND business_id = ?", input.CategoryId, businessId).
			First(&category).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Categoria não encontrada", err, "categoryId")
		}

		if input.PromoPrice != nil && *input.PromoPrice >= input.Price {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Preço promocional deve ser menor que o preço base", nil, "promoPrice")
		}

		c.Locals("CreateProduct", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProductInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		businessId, err := helper.RequireBusinessId(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		if input.CategoryId != nil {
			var category model.Category
			if err := database.DB.Where("id = ? AND business_id = ?", *input.CategoryId, businessId).
				First(&category).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Categoria não encontrada", err, "categoryId")
			}
		}

		if input.Price != nil && *input.Price <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Preço deve ser maior que zero", nil, "price")
		}

		c.Locals("EditProduct", input)
		return GetById(key)(c)
	}
}

func CreateAddonGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAddonGroupInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		// 0 em MaxSelection significa sem limite, qualquer outro valor
		// precisa comportar o mínimo
		if input.MaxSelection != 0 && input.MaxSelection < input.MinSelection {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Máximo de seleções não pode ser menor que o mínimo", nil, "maxSelection")
		}

		c.Locals("CreateAddonGroup", input)
		return c.Next()
	}
}

func CreateAddon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAddonInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		businessId, err := helper.RequireBusinessId(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		var group model.AddonGroup
		if err := database.DB.Where("id = ? AND business_id = ?", input.AddonGroupId, businessId).
			First(&group).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Grupo de adicionais não encontrado", err, "addonGroupId")
		}

		c.Locals("CreateAddon", input)
		return c.Next()
	}
}
