package models

import "time"

type AssistenciaSocial struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	NomeAlimento           string     `json:"nome_alimento" gorm:"size:255;not null"`
	Quantidade             float64    `json:"quantidade" gorm:"type:numeric(10,2);not null"`
	DataValidade           time.Time  `json:"data_validade" gorm:"type:date;not null"`
	FamiliaBeneficiada     string     `json:"familia_beneficiada" gorm:"size:255"`
	QuantidadeCestasBasicas float64   `json:"quantidade_cestas_basicas" gorm:"type:numeric(10,2)"`
	DataEntregaCesta       *time.Time `json:"data_entrega_cesta" gorm:"type:date"`
	DataRegistro           time.Time  `json:"data_registro" gorm:"autoCreateTime"`
}

func (AssistenciaSocial) TableName() string {
	return "assistencia_social"
}
