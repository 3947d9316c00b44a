package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type AddCartItemInput struct {
	ProductId uint `json:"productId"`
	Quantity  int  `json:"quantity"`
	Addons    []struct {
		AddonId  uint `json:"addonId"`
		Quantity int  `json:"quantity"`
	} `json:"addons"`
}

type AdjustCartItemInput struct {
	LineId string `json:"lineId"`
	Delta  int    `json:"delta"`
}

func sessionIdFromRequest(c *fiber.Ctx) (string, error) {
	sessionId := c.Get("X-Session-Id")
	if sessionId == "" {
		return "", errors.New("missing X-Session-Id header")
	}
	return sessionId, nil
}

func GetCart(c *fiber.Ctx) error {
	sessionId, err := sessionIdFromRequest(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sessão do carrinho ausente", err)
	}

	cart := helper.Carts.Get(sessionId)
	lines, subtotal := cart.Snapshot()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"lines":    lines,
		"subtotal": subtotal,
	})
}

// AddCartItem valida produto e adicionais contra o cardápio vivo e
// congela o preço unitário no momento da adição
func AddCartItem(c *fiber.Ctx) error {
	sessionId, err := sessionIdFromRequest(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sessão do carrinho ausente", err)
	}

	slug := c.Params("slug")
	var business model.Business
	if err := database.DB.Where("slug = ?", slug).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	var input AddCartItemInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Requisição inválida", err)
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product model.Product
	if err := database.DB.
		Preload("AddonGroups").
		Preload("AddonGroups.Addons").
		Where("id = ? AND business_id = ? AND active = ?", input.ProductId, business.ID, true).
		First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
	}

	cartAddons, err := resolveCartAddons(product, input)
	if err != nil {
		return utils.FieldErrorResponse(c, err.Error(), "addons")
	}

	cart := helper.Carts.Get(sessionId)
	lineId := cart.AddItem(product.ID, product.Name, product.EffectivePrice(), input.Quantity, cartAddons)

	lines, subtotal := cart.Snapshot()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"lineId":   lineId,
		"lines":    lines,
		"subtotal": subtotal,
	})
}

// resolveCartAddons traduz os ids enviados para os adicionais reais do
// produto (preço vem do banco, nunca do cliente) e aplica a
// cardinalidade min/max de cada grupo. MaxSelection = 0 é ilimitado.
func resolveCartAddons(product model.Product, input AddCartItemInput) ([]helper.CartAddon, error) {
	addonById := make(map[uint]model.Addon)
	groupByAddon := make(map[uint]model.AddonGroup)
	for _, group := range product.AddonGroups {
		for _, addon := range group.Addons {
			addonById[addon.ID] = addon
			groupByAddon[addon.ID] = group
		}
	}

	selectedPerGroup := make(map[uint]int)
	cartAddons := make([]helper.CartAddon, 0, len(input.Addons))
	for _, chosen := range input.Addons {
		addon, ok := addonById[chosen.AddonId]
		if !ok {
			return nil, fmt.Errorf("adicional %d não pertence a este produto", chosen.AddonId)
		}
		quantity := chosen.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		group := groupByAddon[chosen.AddonId]
		selectedPerGroup[group.ID] += quantity
		cartAddons = append(cartAddons, helper.CartAddon{
			AddonId:  addon.ID,
			Name:     addon.Name,
			Quantity: quantity,
			Price:    addon.Price,
		})
	}

	for _, group := range product.AddonGroups {
		selected := selectedPerGroup[group.ID]
		if selected < group.MinSelection {
			return nil, fmt.Errorf("escolha pelo menos %d em %s", group.MinSelection, group.Name)
		}
		if group.MaxSelection > 0 && selected > group.MaxSelection {
			return nil, fmt.Errorf("escolha no máximo %d em %s", group.MaxSelection, group.Name)
		}
	}

	return cartAddons, nil
}

func RemoveCartItem(c *fiber.Ctx) error {
	sessionId, err := sessionIdFromRequest(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sessão do carrinho ausente", err)
	}

	lineId := c.Params("lineId")
	cart := helper.Carts.Get(sessionId)
	cart.RemoveItem(lineId) // linha inexistente é no-op

	lines, subtotal := cart.Snapshot()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"lines":    lines,
		"subtotal": subtotal,
	})
}

func AdjustCartItem(c *fiber.Ctx) error {
	sessionId, err := sessionIdFromRequest(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sessão do carrinho ausente", err)
	}

	var input AdjustCartItemInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Requisição inválida", err)
	}

	cart := helper.Carts.Get(sessionId)
	cart.AdjustQuantity(input.LineId, input.Delta)

	lines, subtotal := cart.Snapshot()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"lines":    lines,
		"subtotal": subtotal,
	})
}

func ClearCart(c *fiber.Ctx) error {
	sessionId, err := sessionIdFromRequest(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sessão do carrinho ausente", err)
	}

	helper.Carts.Clear(sessionId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cleared": true})
}
