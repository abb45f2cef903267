package services

import (
	"fmt"
	"log"

	"github.com/adbrassacoma/administrativo-api/models"
)

// PermissaoService manages the user/screen permission matrix.
type PermissaoService struct {
	usuarios   UsuarioRepo
	telas      TelaRepo
	permissoes PermissaoRepo
}

func NewPermissaoService(usuarios UsuarioRepo, telas TelaRepo, permissoes PermissaoRepo) *PermissaoService {
	return &PermissaoService{usuarios: usuarios, telas: telas, permissoes: permissoes}
}

// ListTelas returns every screen in the catalog.
func (s *PermissaoService) ListTelas() ([]models.TelaPermissao, error) {
	return s.telas.FindAll()
}

// ListPermissoes returns the screen ids the user may access.
func (s *PermissaoService) ListPermissoes(usuarioID uint) ([]string, error) {
	exists, err := s.usuarios.ExistsByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: ID %d", ErrUsuarioNaoEncontrado, usuarioID)
	}
	return s.telaIDs(usuarioID)
}

// ListPermissoesPorEmail returns the screen ids for the authenticated user.
func (s *PermissaoService) ListPermissoesPorEmail(email string) ([]string, error) {
	usuario, err := s.usuarios.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.telaIDs(usuario.ID)
}

// ListPermissoesCompletas returns the assignments with screen details.
func (s *PermissaoService) ListPermissoesCompletas(usuarioID uint) ([]models.PermissaoUsuario, error) {
	exists, err := s.usuarios.ExistsByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: ID %d", ErrUsuarioNaoEncontrado, usuarioID)
	}
	return s.permissoes.FindByUsuarioID(usuarioID)
}

// ReplacePermissoes swaps the user's whole assignment set for the given
// screen ids. Only USER accounts carry assignments, every screen id must
// exist, and the swap is all-or-nothing.
func (s *PermissaoService) ReplacePermissoes(usuarioID uint, telaIDs []string) error {
	usuario, err := s.usuarios.FindByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario.Role != models.RoleUser {
		return ErrApenasUsuarioComum
	}

	for _, telaID := range telaIDs {
		exists, err := s.telas.ExistsByID(telaID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: ID %s", ErrTelaNaoEncontrada, telaID)
		}
	}

	if err := s.permissoes.Replace(usuarioID, telaIDs); err != nil {
		return err
	}
	log.Printf("Permissões atualizadas para o usuário ID %d: %d telas", usuarioID, len(telaIDs))
	return nil
}

// ClearPermissoes removes every assignment of the user. Silent when the user
// does not exist, so promotions never fail on stale data.
func (s *PermissaoService) ClearPermissoes(usuarioID uint) error {
	exists, err := s.usuarios.ExistsByID(usuarioID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.permissoes.DeleteByUsuarioID(usuarioID)
}

// UserHasScreen reports whether the user may access the screen. ADMIN
// bypasses the matrix entirely.
func (s *PermissaoService) UserHasScreen(usuario *models.Usuario, telaID string) (bool, error) {
	if usuario.Role == models.RoleAdmin {
		return true, nil
	}
	ids, err := s.telaIDs(usuario.ID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == telaID {
			return true, nil
		}
	}
	return false, nil
}

func (s *PermissaoService) telaIDs(usuarioID uint) ([]string, error) {
	permissoes, err := s.permissoes.FindByUsuarioID(usuarioID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(permissoes))
	for _, p := range permissoes {
		ids = append(ids, p.TelaID)
	}
	return ids, nil
}
