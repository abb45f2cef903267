package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
)

// columns accepted in the sortBy query parameter
var assistenciaSortColumns = map[string]string{
	"id":            "id",
	"nome_alimento": "nome_alimento",
	"quantidade":    "quantidade",
	"data_validade": "data_validade",
	"data_registro": "data_registro",
}

// CadastrarAssistencia creates a food-assistance record.
func CadastrarAssistencia(c *fiber.Ctx) error {
	registro := new(models.AssistenciaSocial)
	if err := c.BodyParser(registro); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	if registro.NomeAlimento == "" || registro.Quantidade <= 0 || registro.DataValidade.IsZero() {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação",
			"Nome do alimento, quantidade e data de validade são obrigatórios")
	}

	if err := db.DB.Create(registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registro de assistência social cadastrado com sucesso!",
		"data":    registro,
	})
}

// ListAssistencia returns a paginated, sortable, searchable listing.
func ListAssistencia(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}

	sortBy, ok := assistenciaSortColumns[c.Query("sortBy", "id")]
	if !ok {
		sortBy = "id"
	}
	sortDir := "DESC"
	if strings.EqualFold(c.Query("sortDir"), "ASC") {
		sortDir = "ASC"
	}

	query := db.DB.Model(&models.AssistenciaSocial{})
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("nome_alimento ILIKE ? OR familia_beneficiada ILIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	var registros []models.AssistenciaSocial
	err := query.Order(sortBy + " " + sortDir).
		Offset(page * size).
		Limit(size).
		Find(&registros).Error
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}

	return c.JSON(fiber.Map{
		"message":     "Registros de assistência social encontrados com sucesso!",
		"data":        registros,
		"currentPage": page,
		"totalItems":  total,
		"totalPages":  totalPages,
		"pageSize":    size,
		"hasNext":     page+1 < totalPages,
		"hasPrevious": page > 0,
	})
}

// BuscarAssistenciaPorID fetches one food-assistance record.
func BuscarAssistenciaPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.AssistenciaSocial
	if db.DB.First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro de assistência social não encontrado",
			"Registro não encontrado com ID: "+c.Params("id"))
	}
	return c.JSON(fiber.Map{
		"message": "Registro de assistência social encontrado com sucesso!",
		"data":    registro,
	})
}

// AtualizarAssistencia updates an existing food-assistance record.
func AtualizarAssistencia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.AssistenciaSocial
	if db.DB.First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro de assistência social não encontrado",
			"Registro não encontrado com ID: "+c.Params("id"))
	}

	input := new(models.AssistenciaSocial)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}
	if input.NomeAlimento == "" || input.Quantidade <= 0 || input.DataValidade.IsZero() {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação",
			"Nome do alimento, quantidade e data de validade são obrigatórios")
	}

	registro.NomeAlimento = input.NomeAlimento
	registro.Quantidade = input.Quantidade
	registro.DataValidade = input.DataValidade
	registro.FamiliaBeneficiada = input.FamiliaBeneficiada
	registro.QuantidadeCestasBasicas = input.QuantidadeCestasBasicas
	registro.DataEntregaCesta = input.DataEntregaCesta

	if err := db.DB.Save(&registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Registro de assistência social atualizado com sucesso!",
		"data":    registro,
	})
}

// DeletarAssistencia removes a food-assistance record.
func DeletarAssistencia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var registro models.AssistenciaSocial
	if db.DB.First(&registro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Registro de assistência social não encontrado",
			"Registro não encontrado com ID: "+c.Params("id"))
	}

	if err := db.DB.Delete(&registro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Registro de assistência social deletado com sucesso!",
	})
}
