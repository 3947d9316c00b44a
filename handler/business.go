package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBusiness cria o estabelecimento e a conta do proprietário
// numa transação única (somente admin da plataforma)
func CreateBusiness(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("CreateBusiness").(model.CreateBusinessInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.OwnerPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var business model.Business
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		business = model.Business{
			Name:     input.Name,
			Slug:     helper.GenerateUniqueBusinessSlug(tx, input.Name),
			Phone:    input.Phone,
			Whatsapp: input.Whatsapp,
			IsOpen:   true,
		}
		if err := tx.Create(&business).Error; err != nil {
			return err
		}

		owner := model.Account{
			Username:   input.OwnerUsername,
			Email:      input.OwnerEmail,
			Password:   hash,
			Role:       constants.ROLE_OWNER,
			BusinessId: &business.ID,
			Active:     true,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o estabelecimento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, business)
}

func GetMyBusiness(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	var business model.Business
	if err := database.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Preload("Categories.Products").
		Preload("Categories.Products.AddonGroups").
		Preload("Categories.Products.AddonGroups.Addons").
		Preload("DeliveryZones").
		First(&business, businessId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, business)
}

// EditBusinessSettings aplica só os campos enviados (inclui credenciais
// do Mercado Pago e o flag de aprovação automática)
func EditBusinessSettings(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("EditBusinessSettings").(model.EditBusinessSettingsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var business model.Business
	if err := database.DB.First(&business, businessId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Whatsapp != nil {
		updates["whatsapp"] = *input.Whatsapp
	}
	if input.LogoUrl != nil {
		updates["logo_url"] = *input.LogoUrl
	}
	if input.IsOpen != nil {
		updates["is_open"] = *input.IsOpen
	}
	if input.AutoApproveOrders != nil {
		updates["auto_approve_orders"] = *input.AutoApproveOrders
	}
	if input.OpeningTime != nil {
		updates["opening_time"] = *input.OpeningTime
	}
	if input.ClosingTime != nil {
		updates["closing_time"] = *input.ClosingTime
	}
	if input.MinOrderValue != nil {
		updates["min_order_value"] = *input.MinOrderValue
	}
	if input.MPAccessToken != nil {
		updates["mp_access_token"] = *input.MPAccessToken
	}
	if input.MPPublicKey != nil {
		updates["mp_public_key"] = *input.MPPublicKey
	}
	if input.MPWebhookSecret != nil {
		updates["mp_webhook_secret"] = *input.MPWebhookSecret
	}

	if len(updates) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, business)
	}

	if err := database.DB.Model(&business).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar as configurações", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, business)
}
