package models

// PermissaoUsuario links a USER to a screen they may access.
// ADMIN users bypass the matrix entirely and have no rows here.
type PermissaoUsuario struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UsuarioID uint          `json:"usuario_id" gorm:"not null;uniqueIndex:idx_usuario_tela"`
	TelaID    string        `json:"tela_id" gorm:"size:100;not null;uniqueIndex:idx_usuario_tela"`
	Usuario   Usuario       `json:"-" gorm:"foreignKey:UsuarioID"`
	Tela      TelaPermissao `json:"tela,omitempty" gorm:"foreignKey:TelaID"`
}

func (PermissaoUsuario) TableName() string {
	return "permissao_usuario"
}
