package services

import (
	"sort"
	"strings"

	"github.com/adbrassacoma/administrativo-api/models"
)

// in-memory repositories for service tests

type fakeUsuarioRepo struct {
	usuarios map[uint]models.Usuario
}

func newFakeUsuarioRepo(usuarios ...models.Usuario) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{usuarios: make(map[uint]models.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *fakeUsuarioRepo) FindByID(id uint) (*models.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, ErrUsuarioNaoEncontrado
	}
	return &u, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*models.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrUsuarioNaoEncontrado
}

func (r *fakeUsuarioRepo) ExistsByEmail(email string) (bool, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsuarioRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.usuarios[id]
	return ok, nil
}

func (r *fakeUsuarioRepo) FindAll() ([]models.Usuario, error) {
	out := make([]models.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUsuarioRepo) FindByNome(nome string) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range r.usuarios {
		if strings.Contains(strings.ToLower(u.Nome), strings.ToLower(nome)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Save(u *models.Usuario) error {
	r.usuarios[u.ID] = *u
	return nil
}

func (r *fakeUsuarioRepo) Delete(id uint) error {
	delete(r.usuarios, id)
	return nil
}

type fakeTelaRepo struct {
	telas map[string]models.TelaPermissao
}

func newFakeTelaRepo(ids ...string) *fakeTelaRepo {
	r := &fakeTelaRepo{telas: make(map[string]models.TelaPermissao)}
	for _, id := range ids {
		r.telas[id] = models.TelaPermissao{ID: id}
	}
	return r
}

func (r *fakeTelaRepo) FindAll() ([]models.TelaPermissao, error) {
	out := make([]models.TelaPermissao, 0, len(r.telas))
	for _, t := range r.telas {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTelaRepo) ExistsByID(id string) (bool, error) {
	_, ok := r.telas[id]
	return ok, nil
}

type fakePermissaoRepo struct {
	porUsuario map[uint][]string
}

func newFakePermissaoRepo() *fakePermissaoRepo {
	return &fakePermissaoRepo{porUsuario: make(map[uint][]string)}
}

func (r *fakePermissaoRepo) FindByUsuarioID(usuarioID uint) ([]models.PermissaoUsuario, error) {
	var out []models.PermissaoUsuario
	for _, telaID := range r.porUsuario[usuarioID] {
		out = append(out, models.PermissaoUsuario{
			UsuarioID: usuarioID,
			TelaID:    telaID,
			Tela:      models.TelaPermissao{ID: telaID},
		})
	}
	return out, nil
}

func (r *fakePermissaoRepo) Replace(usuarioID uint, telaIDs []string) error {
	r.porUsuario[usuarioID] = append([]string(nil), telaIDs...)
	return nil
}

func (r *fakePermissaoRepo) DeleteByUsuarioID(usuarioID uint) error {
	delete(r.porUsuario, usuarioID)
	return nil
}
