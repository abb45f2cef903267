package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
)

// StartCronJobs schedules the recurring maintenance jobs.
func StartCronJobs() {
	c := cron.New()

	// Every day at 06:00 report food-assistance stock past its validity date.
	_, err := c.AddFunc("0 6 * * *", func() {
		verificarAlimentosVencidos()
	})
	if err != nil {
		log.Println("Erro ao agendar verificação de alimentos vencidos:", err)
		return
	}

	c.Start()
	log.Println("✅ Cron jobs iniciados")
}

func verificarAlimentosVencidos() {
	hoje := time.Now()

	var vencidos []models.AssistenciaSocial
	if err := db.DB.Where("data_validade < ?", hoje).Find(&vencidos).Error; err != nil {
		log.Println("Erro ao verificar alimentos vencidos:", err)
		return
	}

	if len(vencidos) == 0 {
		log.Println("Verificação de validade: nenhum alimento vencido")
		return
	}

	log.Printf("Verificação de validade: %d alimento(s) vencido(s)", len(vencidos))
	for _, a := range vencidos {
		log.Printf(" - %s (validade %s, família %s)", a.NomeAlimento, a.DataValidade.Format("02/01/2006"), a.FamiliaBeneficiada)
	}
}
