package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCustomerAddresses lista os endereços salvos de um telefone no
// estabelecimento (?phone=). O padrão vem primeiro.
func GetCustomerAddresses(c *fiber.Ctx) error {
	slug := c.Params("slug")
	phone := c.Query("phone")
	if phone == "" {
		return utils.FieldErrorResponse(c, "Informe o telefone", "phone")
	}

	var addresses []model.CustomerAddress
	if err := database.DB.
		Where("customer_phone = ? AND business_slug = ?", phone, slug).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar endereços", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, addresses)
}

// SaveCustomerAddress cadastra um endereço fora do fluxo de checkout
func SaveCustomerAddress(c *fiber.Ctx) error {
	input, ok := c.Locals("SaveAddress").(model.SaveAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	slug := c.Params("slug")
	db := database.DB

	var business model.Business
	if err := db.Where("slug = ?", slug).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	label := input.AddressLabel
	if label == "" {
		label = constants.DEFAULT_ADDRESS_LABEL
	}

	// mesmo par endereço+bairro não duplica, só atualiza o rótulo
	var existing model.CustomerAddress
	err := db.Where("customer_phone = ? AND business_slug = ? AND LOWER(address) = LOWER(?) AND LOWER(neighborhood) = LOWER(?)",
		input.CustomerPhone, slug, input.Address, input.Neighborhood).
		First(&existing).Error

	if err == nil {
		existing.AddressLabel = label
		if input.IsDefault {
			if err := setDefaultAddress(db, &existing); err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao salvar o endereço", err)
			}
		} else if err := db.Save(&existing).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao salvar o endereço", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao salvar o endereço", err)
	}

	address := model.CustomerAddress{
		CustomerPhone: input.CustomerPhone,
		BusinessSlug:  slug,
		Address:       input.Address,
		Neighborhood:  input.Neighborhood,
		AddressLabel:  label,
		IsDefault:     input.IsDefault,
	}

	if input.IsDefault {
		if err := setDefaultAddress(db, &address); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao salvar o endereço", err)
		}
	} else if err := db.Create(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao salvar o endereço", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, address)
}

// SetDefaultAddress marca um endereço como padrão e desmarca os demais
func SetDefaultAddress(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var address model.CustomerAddress
	if err := db.First(&address, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Endereço não encontrado", err)
	}

	if err := setDefaultAddress(db, &address); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar o endereço", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, address)
}

// DeleteCustomerAddress remove um endereço salvo
func DeleteCustomerAddress(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Delete(&model.CustomerAddress{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao remover o endereço", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

// setDefaultAddress garante um único endereço padrão por (telefone, slug)
func setDefaultAddress(db *gorm.DB, address *model.CustomerAddress) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CustomerAddress{}).
			Where("customer_phone = ? AND business_slug = ?", address.CustomerPhone, address.BusinessSlug).
			Update("is_default", false).Error; err != nil {
			return err
		}
		address.IsDefault = true
		return tx.Save(address).Error
	})
}
