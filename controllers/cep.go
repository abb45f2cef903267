package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/redis"
)

const cepCacheTTL = 24 * time.Hour

var cepHTTPClient = &http.Client{Timeout: 10 * time.Second}

type viaCepResponse struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	Uf          string `json:"uf"`
	Complemento string `json:"complemento"`
	Erro        bool   `json:"erro,omitempty"`
}

// CepResponse is the address returned by the postal-code lookup.
type CepResponse struct {
	Cep         string `json:"cep"`
	Rua         string `json:"rua"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Complemento string `json:"complemento"`
}

// BuscarCep proxies the lookup to ViaCEP, caching results in Redis.
func BuscarCep(c *fiber.Ctx) error {
	cep := somenteDigitosCep(c.Params("cep"))
	if len(cep) != 8 {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "CEP deve conter 8 dígitos")
	}

	cacheKey := "cep:" + cep
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			var resp CepResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return c.JSON(fiber.Map{
					"message": "CEP encontrado com sucesso!",
					"data":    resp,
				})
			}
		}
	}

	baseURL := os.Getenv("CORREIOS_API_URL")
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}

	res, err := cepHTTPClient.Get(fmt.Sprintf("%s/ws/%s/json", baseURL, cep))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "CEP não encontrado", "Erro ao buscar CEP: "+err.Error())
	}
	defer res.Body.Close()

	var viaCep viaCepResponse
	if err := json.NewDecoder(res.Body).Decode(&viaCep); err != nil || viaCep.Erro {
		return errorJSON(c, fiber.StatusNotFound, "CEP não encontrado", "CEP não encontrado: "+cep)
	}

	resp := CepResponse{
		Cep:         viaCep.Cep,
		Rua:         viaCep.Logradouro,
		Bairro:      viaCep.Bairro,
		Cidade:      viaCep.Localidade,
		Estado:      viaCep.Uf,
		Complemento: viaCep.Complemento,
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := redis.Client.Set(redis.Ctx, cacheKey, payload, cepCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache CEP %s: %v", cep, err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"message": "CEP encontrado com sucesso!",
		"data":    resp,
	})
}

func somenteDigitosCep(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
