package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func CreateBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBusinessInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		var existing model.Account
		if err := database.DB.Where("username = ?", input.OwnerUsername).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Nome de usuário já cadastrado", nil, "ownerUsername")
		}
		if err := database.DB.Where("email = ?", input.OwnerEmail).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "E-mail já cadastrado", nil, "ownerEmail")
		}

		c.Locals("CreateBusiness", input)
		return c.Next()
	}
}

func EditBusinessSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditBusinessSettingsInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		if input.OpeningTime != nil && *input.OpeningTime != "" && !timeOfDayRe.MatchString(*input.OpeningTime) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Horário inválido (use HH:MM)", nil, "openingTime")
		}
		if input.ClosingTime != nil && *input.ClosingTime != "" && !timeOfDayRe.MatchString(*input.ClosingTime) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Horário inválido (use HH:MM)", nil, "closingTime")
		}
		if input.MinOrderValue != nil && *input.MinOrderValue < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Valor mínimo não pode ser negativo", nil, "minOrderValue")
		}

		c.Locals("EditBusinessSettings", input)
		return c.Next()
	}
}
