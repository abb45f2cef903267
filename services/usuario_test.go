package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adbrassacoma/administrativo-api/models"
)

func novoUsuarioService(usuarios *fakeUsuarioRepo) (*UsuarioService, *fakePermissaoRepo) {
	permissoes := newFakePermissaoRepo()
	permSvc := NewPermissaoService(usuarios, newFakeTelaRepo("dashboard", "membros"), permissoes)
	return NewUsuarioService(usuarios, permSvc), permissoes
}

func adminMaster() models.Usuario {
	return models.Usuario{ID: 1, Nome: "Administrador Master", Email: "admin@administrativo.com", Role: models.RoleAdmin}
}

func TestAtualizarUsuario(t *testing.T) {
	usuarios := newFakeUsuarioRepo(
		adminMaster(),
		models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser},
	)
	svc, _ := novoUsuarioService(usuarios)

	atualizado, err := svc.Atualizar(2, "Maria Silva", "maria.silva@exemplo.com", "")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", atualizado.Nome)
	assert.Equal(t, "maria.silva@exemplo.com", atualizado.Email)
}

func TestAtualizarUsuarioTrocaSenhaComHash(t *testing.T) {
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser, Senha: "hash-antigo"})
	svc, _ := novoUsuarioService(usuarios)

	atualizado, err := svc.Atualizar(2, "Maria", "maria@exemplo.com", "nova-senha")
	require.NoError(t, err)
	assert.NotEqual(t, "hash-antigo", atualizado.Senha)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(atualizado.Senha), []byte("nova-senha")))
}

func TestAtualizarUsuarioEmailJaUsado(t *testing.T) {
	usuarios := newFakeUsuarioRepo(
		models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser},
		models.Usuario{ID: 3, Nome: "João", Email: "joao@exemplo.com", Role: models.RoleUser},
	)
	svc, _ := novoUsuarioService(usuarios)

	_, err := svc.Atualizar(2, "Maria", "joao@exemplo.com", "")
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
}

func TestAdminMasterNaoPodeSerAlterado(t *testing.T) {
	usuarios := newFakeUsuarioRepo(adminMaster())
	svc, _ := novoUsuarioService(usuarios)

	_, err := svc.Atualizar(1, "Outro Nome", "outro@exemplo.com", "")
	assert.ErrorIs(t, err, ErrAdminMasterProtegido)

	err = svc.Deletar(1)
	assert.ErrorIs(t, err, ErrAdminMasterProtegido)

	_, err = svc.RebaixarParaUser(1)
	assert.ErrorIs(t, err, ErrAdminMasterProtegido)
}

func TestAdminMasterProtegidoPorNome(t *testing.T) {
	// a proteção vale também quando o master não tem ID 1
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 7, Nome: "Administrador Master", Email: "master@exemplo.com", Role: models.RoleAdmin})
	svc, _ := novoUsuarioService(usuarios)

	err := svc.Deletar(7)
	assert.ErrorIs(t, err, ErrAdminMasterProtegido)
}

func TestDeletarUsuario(t *testing.T) {
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser})
	svc, _ := novoUsuarioService(usuarios)

	require.NoError(t, svc.Deletar(2))

	err := svc.Deletar(2)
	assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
}

func TestPromoverParaAdminLimpaPermissoes(t *testing.T) {
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser})
	svc, permissoes := novoUsuarioService(usuarios)
	permissoes.porUsuario[2] = []string{"dashboard", "membros"}

	promovido, err := svc.PromoverParaAdmin(2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promovido.Role)
	assert.Empty(t, permissoes.porUsuario[2], "atribuições não sobrevivem à promoção")
}

func TestRebaixarParaUser(t *testing.T) {
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 3, Nome: "Chefe", Email: "chefe@exemplo.com", Role: models.RoleAdmin})
	svc, permissoes := novoUsuarioService(usuarios)

	rebaixado, err := svc.RebaixarParaUser(3)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, rebaixado.Role)
	assert.Empty(t, permissoes.porUsuario[3], "rebaixado começa sem nenhuma tela")
}

func TestRebaixarUsuarioComumFalha(t *testing.T) {
	usuarios := newFakeUsuarioRepo(models.Usuario{ID: 2, Nome: "Maria", Email: "maria@exemplo.com", Role: models.RoleUser})
	svc, _ := novoUsuarioService(usuarios)

	_, err := svc.RebaixarParaUser(2)
	assert.ErrorIs(t, err, ErrApenasAdmins)
}

func TestBuscarPorNome(t *testing.T) {
	usuarios := newFakeUsuarioRepo(
		models.Usuario{ID: 2, Nome: "Maria Silva", Email: "maria@exemplo.com", Role: models.RoleUser},
	)
	svc, _ := novoUsuarioService(usuarios)

	achados, err := svc.BuscarPorNome("maria")
	require.NoError(t, err)
	require.Len(t, achados, 1)
	assert.Equal(t, "Maria Silva", achados[0].Nome)

	_, err = svc.BuscarPorNome("ninguem")
	assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
}
