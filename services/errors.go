package services

import "errors"

var (
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrTelaNaoEncontrada    = errors.New("tela não encontrada")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado no sistema")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

	// protected-identity and role-state violations
	ErrAdminMasterProtegido = errors.New("o administrador master não pode ser alterado, excluído, promovido ou rebaixado")
	ErrApenasUsuarioComum   = errors.New("apenas usuários comuns podem ter permissões gerenciadas")
	ErrApenasAdmins         = errors.New("apenas administradores podem ser rebaixados")
)
