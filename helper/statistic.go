package helper

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var statsScheduler gocron.Scheduler

// SnapshotDailyStats fecha o dia anterior por estabelecimento:
// pedidos, cancelamentos e faturamento (pedidos cancelados não somam)
func SnapshotDailyStats() {
	log.Println("[CRON] SnapshotDailyStats triggered")

	db := database.DB
	yesterday := time.Now().AddDate(0, 0, -1)
	day := yesterday.Format("2006-01-02")
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var businesses []model.Business
	if err := db.Find(&businesses).Error; err != nil {
		log.Printf("Erro ao listar estabelecimentos para fechamento: %v", err)
		return
	}

	for _, business := range businesses {
		var orders, cancelled int64
		var revenue float64

		db.Model(&model.Order{}).
			Where("business_id = ? AND created_at >= ? AND created_at < ?", business.ID, dayStart, dayEnd).
			Count(&orders)
		db.Model(&model.Order{}).
			Where("business_id = ? AND created_at >= ? AND created_at < ? AND status = ?", business.ID, dayStart, dayEnd, constants.OrderStatusCancelled).
			Count(&cancelled)
		db.Model(&model.Order{}).
			Where("business_id = ? AND created_at >= ? AND created_at < ? AND status NOT IN ?",
				business.ID, dayStart, dayEnd,
				[]string{constants.OrderStatusCancelled, constants.OrderStatusPendingPayment}).
			Select("COALESCE(SUM(total), 0)").Scan(&revenue)

		stat := model.DailyStat{BusinessId: business.ID, Day: day}
		if err := db.Where(model.DailyStat{BusinessId: business.ID, Day: day}).
			Assign(map[string]interface{}{"orders": orders, "cancelled": cancelled, "revenue": revenue}).
			FirstOrCreate(&stat).Error; err != nil {
			log.Printf("Erro ao gravar fechamento de %s (%s): %v", business.Name, day, err)
		}
	}
}

func StartStatsScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("BRT", -3*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	statsScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(SnapshotDailyStats),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Agendador de fechamento diário iniciado (00:05 BRT)")
}

func StopStatsScheduler() {
	if statsScheduler != nil {
		statsScheduler.Shutdown()
	}
}
