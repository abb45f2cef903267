package models

import "time"

const (
	TipoDizimo  = "DIZIMO"
	TipoOferta  = "OFERTA"
	TipoDespesa = "DESPESA"
	TipoOutros  = "OUTROS"
)

// TiposFinanceiro lists the accepted values for Financeiro.Tipo.
var TiposFinanceiro = []string{TipoDizimo, TipoOferta, TipoDespesa, TipoOutros}

type Financeiro struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Entrada      float64   `json:"entrada" gorm:"type:numeric(15,2)"`
	Saida        float64   `json:"saida" gorm:"type:numeric(15,2)"`
	Tipo         string    `json:"tipo" gorm:"size:20;not null"`
	Observacao   string    `json:"observacao" gorm:"size:255"`
	DataRegistro time.Time `json:"data_registro" gorm:"autoCreateTime"`
	MembroID     *uint     `json:"membro_id"`
	Membro       *Membro   `json:"membro,omitempty" gorm:"foreignKey:MembroID"`
}

func (Financeiro) TableName() string {
	return "financeiro"
}

// TipoValido reports whether t is one of the accepted financial record types.
func TipoValido(t string) bool {
	for _, v := range TiposFinanceiro {
		if v == t {
			return true
		}
	}
	return false
}
