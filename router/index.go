package router

import (
	"cardapio_digital/handler"
	"cardapio_digital/middleware"
	"cardapio_digital/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	// Painel do estabelecimento
	business := v1.Group("/business", logger.New())
	business.Post("/", middleware.Protected(), validate.CreateBusiness(), handler.CreateBusiness)
	business.Get("/me", middleware.Protected(), handler.GetMyBusiness)
	business.Put("/settings", middleware.Protected(), validate.EditBusinessSettings(), handler.EditBusinessSettings)
	business.Get("/stats", middleware.Protected(), handler.GetBusinessStats)
	business.Get("/stats/daily", middleware.Protected(), handler.GetDailyStats)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	product := v1.Group("/product", logger.New())
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/:productId", middleware.Protected(), validate.GetById("productId"), handler.DeleteProduct)
	product.Post("/bulk-delete", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)

	addon := v1.Group("/addon", logger.New())
	addon.Get("/groups", middleware.Protected(), handler.GetAddonGroups)
	addon.Post("/groups", middleware.Protected(), validate.CreateAddonGroup(), handler.CreateAddonGroup)
	addon.Post("/", middleware.Protected(), validate.CreateAddon(), handler.CreateAddon)
	addon.Delete("/:addonId", middleware.Protected(), validate.GetById("addonId"), handler.DeleteAddon)

	zone := v1.Group("/zone", logger.New())
	zone.Get("/", middleware.Protected(), handler.GetDeliveryZones)
	zone.Post("/", middleware.Protected(), validate.CreateDeliveryZone(), handler.CreateDeliveryZone)
	zone.Put("/:zoneId", middleware.Protected(), validate.EditDeliveryZone("zoneId"), handler.EditDeliveryZone)
	zone.Delete("/:zoneId", middleware.Protected(), validate.GetById("zoneId"), handler.DeleteDeliveryZone)

	// Painel da cozinha
	cozinha := v1.Group("/cozinha", logger.New())
	cozinha.Get("/pedidos", middleware.Protected(), handler.GetKitchenBoard)
	cozinha.Put("/pedidos/:orderCode/avancar", middleware.Protected(), validate.AdvanceOrder(), handler.AdvanceOrder)
	cozinha.Post("/pedidos/:orderCode/cancelar", middleware.Protected(), handler.CancelOrder)
	cozinha.Get("/:businessId/ws", websocket.New(handler.KitchenWebsocket))

	// Cardápio público (por slug do estabelecimento)
	cardapio := v1.Group("/cardapio")
	cardapio.Get("/:slug", handler.GetBusinessBySlug)
	cardapio.Get("/:slug/bairros", handler.GetDeliveryZonesBySlug)
	cardapio.Get("/:slug/pedidos", handler.GetOrdersByPhone)

	cardapio.Get("/:slug/carrinho", handler.GetCart)
	cardapio.Post("/:slug/carrinho", handler.AddCartItem)
	cardapio.Delete("/:slug/carrinho", handler.ClearCart)
	cardapio.Delete("/:slug/carrinho/:lineId", handler.RemoveCartItem)
	cardapio.Patch("/:slug/carrinho", handler.AdjustCartItem)

	cardapio.Post("/:slug/checkout", validate.Checkout(), handler.Checkout)

	cardapio.Get("/:slug/enderecos", handler.GetCustomerAddresses)
	cardapio.Post("/:slug/enderecos", validate.SaveAddress(), handler.SaveCustomerAddress)
	cardapio.Patch("/:slug/enderecos/:addressId/padrao", validate.GetById("addressId"), handler.SetDefaultAddress)
	cardapio.Delete("/:slug/enderecos/:addressId", validate.GetById("addressId"), handler.DeleteCustomerAddress)

	// Acompanhamento público do pedido
	pedido := v1.Group("/pedido")
	pedido.Get("/:orderCode", handler.GetOrderByCode)
	pedido.Get("/:publicCode/ws", websocket.New(handler.OrderWebsocket))

	// Pagamento online
	app.Post("/payments", validate.CreatePayment(), handler.CreatePayment)
	app.Post("/payments/confirm", validate.ConfirmPayment(), handler.ConfirmPayment)
	// Server-to-Server
	app.Post("/mercadopago/webhook", handler.MercadoPagoWebhook)
}
