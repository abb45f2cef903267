package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
)

// validarFinanceiro checks the value constraints shared by create and update.
func validarFinanceiro(f *models.Financeiro) (string, bool) {
	if !models.TipoValido(f.Tipo) {
		return "Tipo financeiro inválido: " + f.Tipo, false
	}
	if f.Entrada == 0 && f.Saida == 0 {
		return "É necessário informar pelo menos um valor de entrada ou saída", false
	}
	if f.Entrada < 0 {
		return "O valor de entrada não pode ser negativo", false
	}
	if f.Saida < 0 {
		return "O valor de saída não pode ser negativo", false
	}
	return "", true
}

// CadastrarFinanceiro creates a financial record, optionally tied to a member.
func CadastrarFinanceiro(c *fiber.Ctx) error {
	registro := new(models.Financeiro)
	if err := c.BodyParser(registro); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	registro.Tipo = strings.ToUpper(registro.Tipo)
	if msg, ok := validarFinanceiro(registro); !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", msg)
	}

	if registro.MembroID != nil {
		var membro models.Membro
		if db.DB.First(&membro, *registro.MembroID).RowsAffected == 0 {
			return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
				"Membro não encontrado com ID informado")
		}
	}

	if err := db.DB.Create(registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registro financeiro cadastrado com sucesso!",
		"data":    registro,
	})
}

// ListFinanceiro returns every financial record.
func ListFinanceiro(c *fiber.Ctx) error {
	var registros []models.Financeiro
	if err := db.DB.Preload("Membro").Order("data_registro DESC").Find(&registros).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Registros financeiros encontrados com sucesso!",
		"data":    registros,
	})
}

// BuscarFinanceiroPorID fetches one financial record.
func BuscarFinanceiroPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.Financeiro
	if db.DB.Preload("Membro").First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro financeiro não encontrado",
			"Financeiro não encontrado com ID: "+c.Params("id"))
	}
	return c.JSON(fiber.Map{
		"message": "Registro financeiro encontrado com sucesso!",
		"data":    registro,
	})
}

// BuscarFinanceiroPorTipo lists records of one type.
func BuscarFinanceiroPorTipo(c *fiber.Ctx) error {
	tipo := strings.ToUpper(c.Params("tipo"))
	if !models.TipoValido(tipo) {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Tipo financeiro inválido: "+tipo)
	}

	var registros []models.Financeiro
	if err := db.DB.Preload("Membro").Where("tipo = ?", tipo).Find(&registros).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	if len(registros) == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro financeiro não encontrado",
			"Nenhum registro financeiro encontrado com tipo: "+tipo)
	}
	return c.JSON(fiber.Map{
		"message": "Registros financeiros encontrados com sucesso!",
		"data":    registros,
	})
}

// BuscarFinanceiroPorMembro lists the records tied to a member.
func BuscarFinanceiroPorMembro(c *fiber.Ctx) error {
	membroID, err := c.ParamsInt("membroId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var membro models.Membro
	if db.DB.First(&membro, membroID).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com ID: "+c.Params("membroId"))
	}

	var registros []models.Financeiro
	if err := db.DB.Where("membro_id = ?", membroID).Find(&registros).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	if len(registros) == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro financeiro não encontrado",
			"Nenhum registro financeiro encontrado para o membro com ID: "+c.Params("membroId"))
	}
	return c.JSON(fiber.Map{
		"message": "Registros financeiros encontrados com sucesso!",
		"data":    registros,
	})
}

// AtualizarFinanceiro updates an existing financial record.
func AtualizarFinanceiro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.Financeiro
	if db.DB.First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro financeiro não encontrado",
			"Financeiro não encontrado com ID: "+c.Params("id"))
	}

	input := new(models.Financeiro)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	input.Tipo = strings.ToUpper(input.Tipo)
	if msg, ok := validarFinanceiro(input); !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", msg)
	}

	registro.Entrada = input.Entrada
	registro.Saida = input.Saida
	registro.Tipo = input.Tipo
	registro.Observacao = input.Observacao
	registro.MembroID = input.MembroID

	if err := db.DB.Save(&registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Registro financeiro atualizado com sucesso!",
		"data":    registro,
	})
}

// DeletarFinanceiro removes a financial record.
func DeletarFinanceiro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.Financeiro
	if db.DB.First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro financeiro não encontrado",
			"Financeiro não encontrado com ID: "+c.Params("id"))
	}

	if err := db.DB.Delete(&registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Registro financeiro deletado com sucesso!",
	})
}
