package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adbrassacoma/administrativo-api/models"
)

type fakeScreenStore struct {
	telas   map[string]models.TelaPermissao
	deletes int
}

func newFakeScreenStore() *fakeScreenStore {
	return &fakeScreenStore{telas: make(map[string]models.TelaPermissao)}
}

func (s *fakeScreenStore) FindByID(id string) (*models.TelaPermissao, bool, error) {
	tela, ok := s.telas[id]
	if !ok {
		return nil, false, nil
	}
	return &tela, true, nil
}

func (s *fakeScreenStore) Create(tela *models.TelaPermissao) error {
	s.telas[tela.ID] = *tela
	return nil
}

func (s *fakeScreenStore) Update(tela *models.TelaPermissao) error {
	s.telas[tela.ID] = *tela
	return nil
}

func TestSyncCriaTelasNovas(t *testing.T) {
	store := newFakeScreenStore()
	telas := []models.TelaPermissao{
		{ID: "membros", Nome: "Membros", Rota: "/membros", Descricao: "Lista membros"},
		{ID: "dashboard", Nome: "Dashboard", Rota: "/dashboard", Descricao: "Página inicial"},
	}

	created, updated, err := Sync(store, telas)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)
	assert.Len(t, store.telas, 2)
}

func TestSyncEhIdempotente(t *testing.T) {
	store := newFakeScreenStore()
	telas := []models.TelaPermissao{
		{ID: "membros", Nome: "Membros", Rota: "/membros", Descricao: "Lista membros"},
	}

	_, _, err := Sync(store, telas)
	require.NoError(t, err)

	created, updated, err := Sync(store, telas)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, updated)
}

func TestSyncCorrigeCamposAlterados(t *testing.T) {
	store := newFakeScreenStore()
	store.telas["membros"] = models.TelaPermissao{
		ID: "membros", Nome: "Nome Antigo", Rota: "/membros", Descricao: "Lista membros",
	}

	created, updated, err := Sync(store, []models.TelaPermissao{
		{ID: "membros", Nome: "Membros", Rota: "/membros", Descricao: "Lista membros"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "Membros", store.telas["membros"].Nome)
}

func TestSyncNaoApagaDescricaoExistente(t *testing.T) {
	store := newFakeScreenStore()
	store.telas["membros"] = models.TelaPermissao{
		ID: "membros", Nome: "Membros", Rota: "/membros", Descricao: "Descrição mantida",
	}

	created, updated, err := Sync(store, []models.TelaPermissao{
		{ID: "membros", Nome: "Membros", Rota: "/membros", Descricao: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, updated)
	assert.Equal(t, "Descrição mantida", store.telas["membros"].Descricao)
}

func TestSyncNuncaRemoveTelas(t *testing.T) {
	store := newFakeScreenStore()
	store.telas["tela-antiga"] = models.TelaPermissao{
		ID: "tela-antiga", Nome: "Tela Antiga", Rota: "/antiga",
	}

	_, _, err := Sync(store, []models.TelaPermissao{
		{ID: "membros", Nome: "Membros", Rota: "/membros"},
	})
	require.NoError(t, err)

	_, ok := store.telas["tela-antiga"]
	assert.True(t, ok, "telas existentes nunca são removidas")
}

func TestSyncIgnoraTelaSemID(t *testing.T) {
	store := newFakeScreenStore()

	created, updated, err := Sync(store, []models.TelaPermissao{
		{ID: "", Nome: "Sem ID"},
		{ID: "membros", Nome: "Membros", Rota: "/membros"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, updated)
}
