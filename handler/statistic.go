package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetBusinessStats é o painel do dono: hoje x ontem + produtos mais pedidos
func GetBusinessStats(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	db := database.DB

	type TopProduct struct {
		Name     string `json:"name"`
		Quantity int64  `json:"quantity"`
	}

	var stats struct {
		TodayRevenue  float64 `json:"todayRevenue"`
		TodayOrders   int64   `json:"todayOrders"`
		TodayCancel   int64   `json:"todayCancelled"`
		AverageTicket float64 `json:"averageTicket"`

		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %

		TopProducts []TopProduct `json:"topProducts"`
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Second)

	// === Hoje ===
	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE business_id = ?
          AND status NOT IN (?, ?)
          AND created_at BETWEEN ? AND ?
    `, businessId, constants.OrderStatusCancelled, constants.OrderStatusPendingPayment,
		todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Model(&model.Order{}).
		Where("business_id = ? AND created_at BETWEEN ? AND ?", businessId, todayStart, todayEnd).
		Count(&stats.TodayOrders)

	db.Model(&model.Order{}).
		Where("business_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			businessId, constants.OrderStatusCancelled, todayStart, todayEnd).
		Count(&stats.TodayCancel)

	paidOrders := stats.TodayOrders - stats.TodayCancel
	if paidOrders > 0 {
		stats.AverageTicket = stats.TodayRevenue / float64(paidOrders)
	}

	// === Ontem ===
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE business_id = ?
          AND status NOT IN (?, ?)
          AND created_at BETWEEN ? AND ?
    `, businessId, constants.OrderStatusCancelled, constants.OrderStatusPendingPayment,
		yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Model(&model.Order{}).
		Where("business_id = ? AND created_at BETWEEN ? AND ?", businessId, yesterdayStart, yesterdayEnd).
		Count(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	// === Mais pedidos (30 dias, lendo o snapshot dos itens) ===
	db.Raw(`
        SELECT item->>'name' AS name,
               SUM((item->>'quantity')::int) AS quantity
        FROM orders, jsonb_array_elements(items::jsonb) AS item
        WHERE business_id = ?
          AND status NOT IN (?, ?)
          AND created_at > ?
        GROUP BY item->>'name'
        ORDER BY quantity DESC
        LIMIT 5
    `, businessId, constants.OrderStatusCancelled, constants.OrderStatusPendingPayment,
		now.AddDate(0, 0, -30)).Scan(&stats.TopProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetDailyStats lista os fechamentos diários (?days=30, máx. 90)
func GetDailyStats(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 90 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	var rows []model.DailyStat
	if err := database.DB.
		Where("business_id = ? AND day >= ?", businessId, since).
		Order("day DESC").
		Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar o histórico", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
