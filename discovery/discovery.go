package discovery

import (
	"regexp"
	"strings"

	"github.com/adbrassacoma/administrativo-api/models"
)

// Endpoint describes one registered HTTP route. The routes package keeps a
// static catalog of these so discovery works over plain data instead of
// framework internals.
type Endpoint struct {
	Method      string
	BasePath    string // group prefix, e.g. "/api/membros"
	SubPath     string // method-level path, e.g. "/:id"; empty for the group root
	Summary     string
	Description string
}

var (
	pathIDPattern       = regexp.MustCompile(`(?i)^/:[^/]*id[^/]*$`)
	pathIDEditarPattern = regexp.MustCompile(`(?i)^/:[^/]*id[^/]*/editar$`)
	paramIDPattern      = regexp.MustCompile(`(?i)/:[^/]*id[^/]*`)
)

// Endpoints under these prefixes never become permission screens.
var ignoredPrefixes = []string{"/api/auth", "/api/permissoes", "/api/cep"}

// Discover maps the route catalog to permission screens. The first endpoint
// that yields a given screen id wins; later duplicates are discarded, so the
// pass produces the same result on every boot.
func Discover(endpoints []Endpoint) []models.TelaPermissao {
	seen := make(map[string]bool)
	var telas []models.TelaPermissao

	for _, ep := range endpoints {
		tela, ok := processEndpoint(ep)
		if !ok || seen[tela.ID] {
			continue
		}
		seen[tela.ID] = true
		telas = append(telas, tela)
	}

	// Fixed screen that no endpoint produces
	if !seen["dashboard"] {
		telas = append(telas, models.TelaPermissao{
			ID:        "dashboard",
			Nome:      "Dashboard",
			Rota:      "/dashboard",
			Descricao: "Página inicial do sistema",
		})
	}

	return telas
}

func processEndpoint(ep Endpoint) (models.TelaPermissao, bool) {
	if isIgnored(ep.BasePath) {
		return models.TelaPermissao{}, false
	}

	recurso := extractRecurso(ep.BasePath)
	if recurso == "" {
		return models.TelaPermissao{}, false
	}

	id := telaID(recurso, ep.Method, ep.SubPath)
	if id == "" {
		return models.TelaPermissao{}, false
	}

	frontendBase := strings.TrimPrefix(ep.BasePath, "/api")
	nome := telaNome(ep, recurso)

	descricao := ep.Description
	if descricao == "" {
		descricao = nome
	}

	return models.TelaPermissao{
		ID:        id,
		Nome:      nome,
		Rota:      telaRota(frontendBase, ep.SubPath, ep.Method),
		Descricao: descricao,
	}, true
}

func isIgnored(basePath string) bool {
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(basePath, prefix) {
			return true
		}
	}
	return false
}

func extractRecurso(basePath string) string {
	path := strings.TrimPrefix(basePath, "/api")
	path = strings.TrimPrefix(path, "/")
	return strings.TrimSuffix(path, "/")
}

// telaID derives the screen id from the endpoint shape. Rules are evaluated
// in precedence order; an empty return means the endpoint has no screen.
func telaID(recurso, method, subPath string) string {
	root := subPath == "" || subPath == "/"

	switch {
	case method == "GET" && root:
		return recurso
	case method == "POST" && root:
		return recurso + "-novo"
	case method == "GET" && pathIDPattern.MatchString(subPath):
		return recurso + "-detalhes"
	case method == "PUT" && pathIDPattern.MatchString(subPath):
		return recurso + "-editar"
	case method == "DELETE" && pathIDPattern.MatchString(subPath):
		// delete endpoints never produce a screen
		return ""
	case method == "GET" && subPath == "/novo":
		return recurso + "-novo"
	case method == "GET" && pathIDEditarPattern.MatchString(subPath):
		return recurso + "-editar"
	}

	return ""
}

// telaRota derives the frontend route from the API path, rewriting id
// placeholders to the client-side ":id" token.
func telaRota(frontendBase, subPath, method string) string {
	if subPath == "" || subPath == "/" {
		return frontendBase
	}

	if pathIDPattern.MatchString(subPath) {
		if method == "GET" {
			return frontendBase + "/:id"
		}
		if method == "PUT" {
			return frontendBase + "/:id/editar"
		}
	}

	rota := frontendBase + subPath
	rota = paramIDPattern.ReplaceAllString(rota, "/:id")
	return strings.TrimPrefix(rota, "/api")
}

// telaNome prefers the endpoint's human-authored summary and otherwise
// synthesizes a name from the resource and the matched rule.
func telaNome(ep Endpoint, recurso string) string {
	if ep.Summary != "" {
		return ep.Summary
	}

	formatado := formatRecurso(recurso)
	root := ep.SubPath == "" || ep.SubPath == "/"

	switch {
	case ep.Method == "GET" && root:
		return formatado
	case ep.Method == "POST" || (ep.Method == "GET" && ep.SubPath == "/novo"):
		return "Cadastrar " + formatado
	case ep.Method == "PUT" || (ep.Method == "GET" && strings.Contains(ep.SubPath, "editar")):
		return "Editar " + formatado
	case ep.Method == "GET" && paramIDPattern.MatchString(ep.SubPath):
		return "Detalhes do " + formatado
	}

	return formatado
}

// formatRecurso capitalizes each hyphen-or-space-separated word,
// e.g. "assistencia-social" -> "Assistencia Social".
func formatRecurso(recurso string) string {
	if recurso == "" {
		return ""
	}

	palavras := strings.FieldsFunc(recurso, func(r rune) bool {
		return r == '-' || r == ' '
	})
	for i, palavra := range palavras {
		palavras[i] = strings.ToUpper(palavra[:1]) + palavra[1:]
	}
	return strings.Join(palavras, " ")
}
