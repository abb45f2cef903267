package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
	"github.com/adbrassacoma/administrativo-api/utils"
)

// CadastrarMembro creates a new member with its address.
func CadastrarMembro(c *fiber.Ctx) error {
	membro := new(models.Membro)
	if err := c.BodyParser(membro); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	if membro.Nome == "" || membro.Cpf == "" || membro.Rg == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Nome, CPF e RG são obrigatórios")
	}
	if !utils.CpfValido(membro.Cpf) {
		return errorJSON(c, fiber.StatusBadRequest, "CPF inválido", "CPF inválido: "+membro.Cpf)
	}
	membro.Cpf = utils.FormatCpf(membro.Cpf)

	if status, label, msg := checkMembroConflicts(membro, 0); status != 0 {
		return errorJSON(c, status, label, msg)
	}

	if err := db.DB.Create(membro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Membro cadastrado com sucesso!",
		"data":    membro,
	})
}

// ListMembros returns every registered member.
func ListMembros(c *fiber.Ctx) error {
	var membros []models.Membro
	if err := db.DB.Preload("Endereco").Order("id").Find(&membros).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Membros encontrados com sucesso!",
		"data":    membros,
	})
}

// BuscarMembroPorID fetches one member by its numeric id.
func BuscarMembroPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var membro models.Membro
	if db.DB.Preload("Endereco").First(&membro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com ID: "+c.Params("id"))
	}
	return c.JSON(fiber.Map{
		"message": "Membro encontrado com sucesso!",
		"data":    membro,
	})
}

// BuscarMembrosPorNome searches members whose name contains the given term.
func BuscarMembrosPorNome(c *fiber.Ctx) error {
	nome := c.Params("nome")

	var membros []models.Membro
	if err := db.DB.Preload("Endereco").Where("nome ILIKE ?", "%"+nome+"%").Find(&membros).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	if len(membros) == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Nenhum membro encontrado com nome contendo: "+nome)
	}
	return c.JSON(fiber.Map{
		"message": "Membros encontrados com sucesso!",
		"data":    membros,
	})
}

// BuscarMembroPorCpf fetches one member by CPF.
func BuscarMembroPorCpf(c *fiber.Ctx) error {
	cpf := c.Params("cpf")
	if !utils.CpfValido(cpf) {
		return errorJSON(c, fiber.StatusBadRequest, "CPF inválido", "CPF inválido: "+cpf)
	}

	var membro models.Membro
	if db.DB.Preload("Endereco").Where("cpf = ?", utils.FormatCpf(cpf)).First(&membro).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com CPF: "+cpf)
	}
	return c.JSON(fiber.Map{
		"message": "Membro encontrado com sucesso!",
		"data":    membro,
	})
}

// BuscarMembroPorRi fetches one member by RI.
func BuscarMembroPorRi(c *fiber.Ctx) error {
	ri := c.Params("ri")

	var membro models.Membro
	if db.DB.Preload("Endereco").Where("ri = ?", ri).First(&membro).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com RI: "+ri)
	}
	return c.JSON(fiber.Map{
		"message": "Membro encontrado com sucesso!",
		"data":    membro,
	})
}

// AtualizarMembro updates an existing member and its address.
func AtualizarMembro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var membro models.Membro
	if db.DB.Preload("Endereco").First(&membro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com ID: "+c.Params("id"))
	}

	input := new(models.Membro)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}
	if !utils.CpfValido(input.Cpf) {
		return errorJSON(c, fiber.StatusBadRequest, "CPF inválido", "CPF inválido: "+input.Cpf)
	}
	input.Cpf = utils.FormatCpf(input.Cpf)

	if status, label, msg := checkMembroConflicts(input, membro.ID); status != 0 {
		return errorJSON(c, status, label, msg)
	}

	membro.Nome = input.Nome
	membro.Rg = input.Rg
	membro.Cpf = input.Cpf
	membro.Ri = input.Ri
	membro.Cargo = input.Cargo
	endereco := input.Endereco
	endereco.ID = membro.Endereco.ID
	membro.Endereco = endereco

	if err := db.DB.Session(&gormFullSave).Save(&membro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Membro atualizado com sucesso!",
		"data":    membro,
	})
}

// DeletarMembro removes a member.
func DeletarMembro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	var membro models.Membro
	if db.DB.First(&membro, id).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusNotFound, "Membro não encontrado",
			"Membro não encontrado com ID: "+c.Params("id"))
	}

	if err := db.DB.Delete(&membro).Error; err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Membro deletado com sucesso!",
	})
}

// checkMembroConflicts enforces CPF/RG/RI uniqueness, ignoring the member
// being updated. Returns a zero status when there is no conflict.
func checkMembroConflicts(input *models.Membro, selfID uint) (int, string, string) {
	var existing models.Membro
	if db.DB.Where("cpf = ? AND id <> ?", input.Cpf, selfID).First(&existing).RowsAffected > 0 {
		return fiber.StatusConflict, "CPF já cadastrado", "CPF já cadastrado no sistema"
	}
	if db.DB.Where("rg = ? AND id <> ?", input.Rg, selfID).First(&existing).RowsAffected > 0 {
		return fiber.StatusConflict, "RG já cadastrado", "RG já cadastrado no sistema"
	}
	if input.Ri != "" {
		if db.DB.Where("ri = ? AND id <> ?", input.Ri, selfID).First(&existing).RowsAffected > 0 {
			return fiber.StatusConflict, "RI já cadastrado", "RI já cadastrado no sistema"
		}
	}
	return 0, "", ""
}
