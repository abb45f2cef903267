package models

type Endereco struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Rua         string `json:"rua" gorm:"size:120;not null"`
	Numero      string `json:"numero" gorm:"size:10;not null"`
	Cep         string `json:"cep" gorm:"size:9;not null"`
	Bairro      string `json:"bairro" gorm:"size:80;not null"`
	Cidade      string `json:"cidade" gorm:"size:100;not null"`
	Estado      string `json:"estado" gorm:"size:2;not null"`
	Complemento string `json:"complemento" gorm:"size:120"`
}

type Membro struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Nome       string   `json:"nome" gorm:"size:120;not null"`
	Rg         string   `json:"rg" gorm:"size:20;unique;not null"`
	Cpf        string   `json:"cpf" gorm:"size:14;unique;not null"`
	Ri         string   `json:"ri" gorm:"size:20"`
	Cargo      string   `json:"cargo" gorm:"size:60"`
	EnderecoID uint     `json:"-"`
	Endereco   Endereco `json:"endereco" gorm:"foreignKey:EnderecoID;constraint:OnDelete:CASCADE"`
}

func (Membro) TableName() string {
	return "membros"
}
