package services

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/adbrassacoma/administrativo-api/models"
)

// UsuarioService manages user accounts and role transitions.
type UsuarioService struct {
	usuarios   UsuarioRepo
	permissoes *PermissaoService
}

func NewUsuarioService(usuarios UsuarioRepo, permissoes *PermissaoService) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, permissoes: permissoes}
}

func (s *UsuarioService) ListAll() ([]models.Usuario, error) {
	return s.usuarios.FindAll()
}

func (s *UsuarioService) BuscarPorNome(nome string) ([]models.Usuario, error) {
	usuarios, err := s.usuarios.FindByNome(nome)
	if err != nil {
		return nil, err
	}
	if len(usuarios) == 0 {
		return nil, fmt.Errorf("%w: nome contendo %q", ErrUsuarioNaoEncontrado, nome)
	}
	return usuarios, nil
}

// Atualizar updates name, email and optionally the password of a user.
func (s *UsuarioService) Atualizar(id uint, nome, email, senha string) (*models.Usuario, error) {
	usuario, err := s.usuarios.FindByID(id)
	if err != nil {
		return nil, err
	}
	if usuario.IsAdminMaster() {
		return nil, ErrAdminMasterProtegido
	}

	if usuario.Email != email {
		exists, err := s.usuarios.ExistsByEmail(email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailJaCadastrado
		}
	}

	usuario.Nome = nome
	usuario.Email = email
	if senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.Senha = string(hash)
	}

	if err := s.usuarios.Save(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *UsuarioService) Deletar(id uint) error {
	usuario, err := s.usuarios.FindByID(id)
	if err != nil {
		return err
	}
	if usuario.IsAdminMaster() {
		return ErrAdminMasterProtegido
	}
	return s.usuarios.Delete(id)
}

// PromoverParaAdmin grants the ADMIN role. Assignments are cleared first:
// admins bypass the matrix, and stale rows must not survive a later demotion.
func (s *UsuarioService) PromoverParaAdmin(id uint) (*models.Usuario, error) {
	usuario, err := s.usuarios.FindByID(id)
	if err != nil {
		return nil, err
	}
	if usuario.IsAdminMaster() {
		return nil, ErrAdminMasterProtegido
	}

	if usuario.Role == models.RoleUser {
		if err := s.permissoes.ClearPermissoes(id); err != nil {
			return nil, err
		}
	}

	usuario.Role = models.RoleAdmin
	if err := s.usuarios.Save(usuario); err != nil {
		return nil, err
	}
	log.Printf("Usuário promovido a admin. ID: %d, Email: %s", usuario.ID, usuario.Email)
	return usuario, nil
}

// RebaixarParaUser revokes the ADMIN role. The demoted user starts with no
// assignments until they are set explicitly.
func (s *UsuarioService) RebaixarParaUser(id uint) (*models.Usuario, error) {
	usuario, err := s.usuarios.FindByID(id)
	if err != nil {
		return nil, err
	}
	if usuario.IsAdminMaster() {
		return nil, ErrAdminMasterProtegido
	}
	if usuario.Role != models.RoleAdmin {
		return nil, ErrApenasAdmins
	}

	usuario.Role = models.RoleUser
	if err := s.usuarios.Save(usuario); err != nil {
		return nil, err
	}
	log.Printf("Admin rebaixado a usuário comum. ID: %d, Email: %s", usuario.ID, usuario.Email)
	return usuario, nil
}
