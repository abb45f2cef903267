package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
)

// UsuarioRepo is the persistence surface for user accounts.
type UsuarioRepo interface {
	FindByID(id uint) (*models.Usuario, error)
	FindByEmail(email string) (*models.Usuario, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByID(id uint) (bool, error)
	FindAll() ([]models.Usuario, error)
	FindByNome(nome string) ([]models.Usuario, error)
	Save(u *models.Usuario) error
	Delete(id uint) error
}

// TelaRepo is the persistence surface for permission screens.
type TelaRepo interface {
	FindAll() ([]models.TelaPermissao, error)
	ExistsByID(id string) (bool, error)
}

// PermissaoRepo is the persistence surface for user/screen assignments.
// Replace must apply the delete-then-insert as a single atomic unit.
type PermissaoRepo interface {
	FindByUsuarioID(usuarioID uint) ([]models.PermissaoUsuario, error)
	Replace(usuarioID uint, telaIDs []string) error
	DeleteByUsuarioID(usuarioID uint) error
}

type gormUsuarioRepo struct{ db *gorm.DB }
type gormTelaRepo struct{ db *gorm.DB }
type gormPermissaoRepo struct{ db *gorm.DB }

func (r gormUsuarioRepo) FindByID(id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	return &u, nil
}

func (r gormUsuarioRepo) FindByEmail(email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	return &u, nil
}

func (r gormUsuarioRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Usuario{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r gormUsuarioRepo) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Usuario{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r gormUsuarioRepo) FindAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Order("id").Find(&usuarios).Error
	return usuarios, err
}

func (r gormUsuarioRepo) FindByNome(nome string) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Where("nome ILIKE ?", "%"+nome+"%").Find(&usuarios).Error
	return usuarios, err
}

func (r gormUsuarioRepo) Save(u *models.Usuario) error {
	return r.db.Save(u).Error
}

func (r gormUsuarioRepo) Delete(id uint) error {
	return r.db.Delete(&models.Usuario{}, id).Error
}

func (r gormTelaRepo) FindAll() ([]models.TelaPermissao, error) {
	var telas []models.TelaPermissao
	err := r.db.Order("id").Find(&telas).Error
	return telas, err
}

func (r gormTelaRepo) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TelaPermissao{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r gormPermissaoRepo) FindByUsuarioID(usuarioID uint) ([]models.PermissaoUsuario, error) {
	var permissoes []models.PermissaoUsuario
	err := r.db.Preload("Tela").Where("usuario_id = ?", usuarioID).Find(&permissoes).Error
	return permissoes, err
}

func (r gormPermissaoRepo) Replace(usuarioID uint, telaIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", usuarioID).Delete(&models.PermissaoUsuario{}).Error; err != nil {
			return err
		}
		for _, telaID := range telaIDs {
			p := models.PermissaoUsuario{UsuarioID: usuarioID, TelaID: telaID}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r gormPermissaoRepo) DeleteByUsuarioID(usuarioID uint) error {
	return r.db.Where("usuario_id = ?", usuarioID).Delete(&models.PermissaoUsuario{}).Error
}

// Permissoes returns the permission service backed by the global connection.
func Permissoes() *PermissaoService {
	return NewPermissaoService(
		gormUsuarioRepo{db.DB},
		gormTelaRepo{db.DB},
		gormPermissaoRepo{db.DB},
	)
}

// Usuarios returns the user service backed by the global connection.
func Usuarios() *UsuarioService {
	return NewUsuarioService(gormUsuarioRepo{db.DB}, Permissoes())
}
