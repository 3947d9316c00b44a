package helper

import (
	"cardapio_digital/database"
	"cardapio_digital/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var hoursScheduler *cron.Cron

// withinOpeningHours trata janelas que cruzam a meia-noite (18:00–02:00)
func withinOpeningHours(now, opening, closing string) bool {
	if opening <= closing {
		return now >= opening && now < closing
	}
	return now >= opening || now < closing
}

func sweepOpeningHours() {
	db := database.DB
	now := time.Now().Format("15:04")

	var businesses []model.Business
	if err := db.Where("opening_time IS NOT NULL AND closing_time IS NOT NULL").Find(&businesses).Error; err != nil {
		log.Printf("Erro ao varrer horários de funcionamento: %v", err)
		return
	}

	for _, business := range businesses {
		shouldBeOpen := withinOpeningHours(now, *business.OpeningTime, *business.ClosingTime)
		if business.IsOpen == shouldBeOpen {
			continue
		}
		if err := db.Model(&business).Update("is_open", shouldBeOpen).Error; err != nil {
			log.Printf("Erro ao atualizar is_open de '%s': %v", business.Name, err)
			continue
		}
		log.Printf("Estabelecimento '%s' → is_open=%v (horário de funcionamento)", business.Name, shouldBeOpen)
	}
}

func StartOpeningHoursScheduler() {
	hoursScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// A cada 5 minutos é suficiente para abrir/fechar no horário
	_, err := hoursScheduler.AddFunc("*/5 * * * *", sweepOpeningHours)
	if err != nil {
		log.Printf("Erro ao iniciar agendador de horários: %v", err)
		return
	}

	hoursScheduler.Start()
	log.Println("Agendador de horário de funcionamento iniciado (a cada 5 minutos)")
}

func StopOpeningHoursScheduler() {
	if hoursScheduler != nil {
		hoursScheduler.Stop()
	}
}
