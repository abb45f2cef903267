package models

// TelaPermissao is a permission screen discovered from the route catalog.
// The ID is a stable string derived from the endpoint (e.g. "membros",
// "membros-novo") and is never regenerated once stored.
type TelaPermissao struct {
	ID        string `json:"id" gorm:"primaryKey;size:100"`
	Nome      string `json:"nome" gorm:"size:120;not null"`
	Rota      string `json:"rota" gorm:"size:200;not null"`
	Descricao string `json:"descricao" gorm:"size:500"`
}

func (TelaPermissao) TableName() string {
	return "tela_permissao"
}
