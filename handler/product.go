package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateProduct(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("CreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.Category
	if err := database.DB.Where("id = ? AND business_id = ?", input.CategoryId, businessId).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Categoria não encontrada", err)
	}

	var product model.Product
	copier.Copy(&product, &input)
	product.BusinessId = businessId
	product.Active = true

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		if len(input.AddonGroupIds) > 0 {
			var groups []model.AddonGroup
			if err := tx.Where("id IN ? AND business_id = ?", input.AddonGroupIds, businessId).Find(&groups).Error; err != nil {
				return err
			}
			return tx.Model(&product).Association("AddonGroups").Replace(&groups)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	productId, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("EditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.Where("id = ? AND business_id = ?", productId, businessId).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
	}

	if input.CategoryId != nil {
		product.CategoryId = *input.CategoryId
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	// promoPrice aceita nil para remover a promoção
	product.PromoPrice = input.PromoPrice
	if input.ImageUrl != nil {
		product.ImageUrl = input.ImageUrl
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if input.AddonGroupIds != nil {
			var groups []model.AddonGroup
			if err := tx.Where("id IN ? AND business_id = ?", *input.AddonGroupIds, businessId).Find(&groups).Error; err != nil {
				return err
			}
			return tx.Model(&product).Association("AddonGroups").Replace(&groups)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar o produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	productId, _ := c.Locals("inputId").(int)

	result := database.DB.Where("id = ? AND business_id = ?", productId, businessId).Delete(&model.Product{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível remover o produto", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": productId})
}

// DeleteProducts remove vários produtos de uma vez (limpeza de cardápio)
func DeleteProducts(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.
		Where("id IN ? AND business_id = ?", input.IDs, businessId).
		Delete(&model.Product{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível remover os produtos", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// UploadProductImage sobe a foto do produto para o Cloudinary e grava a URL
func UploadProductImage(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	productId, _ := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.Where("id = ? AND business_id = ?", productId, businessId).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Arquivo de imagem ausente", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível ler a imagem", err)
	}
	defer file.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload de imagem indisponível", err)
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:       fmt.Sprintf("products/%d", businessId),
		PublicID:     fmt.Sprintf("product_%d_%d", product.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível enviar a imagem", err)
	}

	if err := database.DB.Model(&product).Update("image_url", utils.StringPtr(uploadResult.SecureURL)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar a URL da imagem", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": uploadResult.SecureURL})
}
