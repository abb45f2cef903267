package discovery

import (
	"log"

	"github.com/adbrassacoma/administrativo-api/models"
)

// ScreenStore is the persistence surface the reconciler needs.
type ScreenStore interface {
	FindByID(id string) (*models.TelaPermissao, bool, error)
	Create(tela *models.TelaPermissao) error
	Update(tela *models.TelaPermissao) error
}

// Sync reconciles the discovered screens against the stored catalog: missing
// screens are created, drifted name/route/description fields are corrected on
// existing ones, and nothing is ever deleted. Returns how many screens were
// created and updated; both zero means the catalog had no drift.
func Sync(store ScreenStore, telas []models.TelaPermissao) (created, updated int, err error) {
	for _, tela := range telas {
		if tela.ID == "" {
			log.Printf("Tela sem ID ignorada: %s", tela.Nome)
			continue
		}

		existente, found, err := store.FindByID(tela.ID)
		if err != nil {
			return created, updated, err
		}

		if !found {
			t := tela
			if err := store.Create(&t); err != nil {
				return created, updated, err
			}
			created++
			continue
		}

		changed := false
		if tela.Nome != existente.Nome {
			existente.Nome = tela.Nome
			changed = true
		}
		if tela.Rota != existente.Rota {
			existente.Rota = tela.Rota
			changed = true
		}
		if tela.Descricao != "" && tela.Descricao != existente.Descricao {
			existente.Descricao = tela.Descricao
			changed = true
		}

		if changed {
			if err := store.Update(existente); err != nil {
				return created, updated, err
			}
			updated++
		}
	}

	return created, updated, nil
}
