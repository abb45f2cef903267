package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adbrassacoma/administrativo-api/models"
)

// TelaStore persists permission screens. It satisfies discovery.ScreenStore.
type TelaStore struct {
	db *gorm.DB
}

func NewTelaStore() *TelaStore {
	return &TelaStore{db: DB}
}

func (s *TelaStore) FindByID(id string) (*models.TelaPermissao, bool, error) {
	var tela models.TelaPermissao
	err := s.db.First(&tela, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &tela, true, nil
}

func (s *TelaStore) Create(tela *models.TelaPermissao) error {
	return s.db.Create(tela).Error
}

func (s *TelaStore) Update(tela *models.TelaPermissao) error {
	return s.db.Save(tela).Error
}
