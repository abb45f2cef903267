package routes

import "github.com/adbrassacoma/administrativo-api/discovery"

// Catalog is the static endpoint descriptor table that feeds permission
// screen discovery. Every route registered by the Setup functions appears
// here with the same method and paths; the summary/description pair is the
// human-authored metadata the screens inherit.
func Catalog() []discovery.Endpoint {
	return []discovery.Endpoint{
		// /api/auth — ignored by discovery, listed for completeness
		{Method: "POST", BasePath: "/api/auth", SubPath: "/cadastro", Summary: "Cadastrar novo usuário", Description: "Cria um novo usuário no sistema"},
		{Method: "POST", BasePath: "/api/auth", SubPath: "/login", Summary: "Fazer login", Description: "Autentica um usuário e retorna um token JWT"},
		{Method: "GET", BasePath: "/api/auth", SubPath: "/usuarios", Summary: "Listar todos os usuários", Description: "Retorna uma lista com todos os usuários cadastrados"},
		{Method: "GET", BasePath: "/api/auth", SubPath: "/usuarios/buscar/:nome", Summary: "Buscar usuários por nome", Description: "Busca usuário por nome"},
		{Method: "PUT", BasePath: "/api/auth", SubPath: "/usuarios/:id", Summary: "Atualizar usuário", Description: "Atualiza os dados de um usuário existente"},
		{Method: "DELETE", BasePath: "/api/auth", SubPath: "/usuarios/:id", Summary: "Deletar usuário", Description: "Remove um usuário do sistema"},
		{Method: "PUT", BasePath: "/api/auth", SubPath: "/usuarios/:id/promover-admin", Summary: "Promover usuário a admin", Description: "Promove um usuário comum para administrador"},
		{Method: "PUT", BasePath: "/api/auth", SubPath: "/usuarios/:id/rebaixar-user", Summary: "Rebaixar admin para usuário comum", Description: "Rebaixa um administrador para usuário comum"},

		// /api/permissoes — ignored by discovery
		{Method: "GET", BasePath: "/api/permissoes", SubPath: "/telas", Summary: "Listar todas as telas disponíveis", Description: "Retorna uma lista com todas as telas do sistema"},
		{Method: "GET", BasePath: "/api/permissoes", SubPath: "/minhas", Summary: "Buscar minhas permissões", Description: "Retorna as IDs das telas que o usuário autenticado pode acessar"},
		{Method: "GET", BasePath: "/api/permissoes", SubPath: "/usuario/:usuarioId", Summary: "Buscar permissões de um usuário", Description: "Retorna as IDs das telas que o usuário pode acessar"},
		{Method: "GET", BasePath: "/api/permissoes", SubPath: "/usuario/:usuarioId/completo", Summary: "Buscar permissões completas de um usuário", Description: "Retorna as permissões do usuário incluindo detalhes das telas"},
		{Method: "PUT", BasePath: "/api/permissoes", SubPath: "/usuario/:usuarioId", Summary: "Atualizar permissões de um usuário", Description: "Substitui o conjunto de telas permitidas do usuário"},

		// /api/membros
		{Method: "POST", BasePath: "/api/membros", SubPath: "", Summary: "Cadastrar novo membro", Description: "Cria um novo membro no sistema"},
		{Method: "GET", BasePath: "/api/membros", SubPath: "", Summary: "Listar todos os membros", Description: "Retorna uma lista com todos os membros cadastrados"},
		{Method: "GET", BasePath: "/api/membros", SubPath: "/buscar/nome/:nome", Summary: "Buscar membros por nome", Description: "Busca membros cujo nome contém o termo informado"},
		{Method: "GET", BasePath: "/api/membros", SubPath: "/buscar/cpf/:cpf", Summary: "Buscar membro por CPF", Description: "Busca um membro pelo seu CPF"},
		{Method: "GET", BasePath: "/api/membros", SubPath: "/buscar/ri/:ri", Summary: "Buscar membro por RI", Description: "Busca um membro pelo seu RI"},
		{Method: "GET", BasePath: "/api/membros", SubPath: "/:id", Summary: "Buscar membro por ID", Description: "Busca um membro pelo seu ID"},
		{Method: "PUT", BasePath: "/api/membros", SubPath: "/:id", Summary: "Atualizar membro", Description: "Atualiza os dados de um membro existente"},
		{Method: "DELETE", BasePath: "/api/membros", SubPath: "/:id", Summary: "Deletar membro", Description: "Remove um membro do sistema"},

		// /api/financeiro
		{Method: "POST", BasePath: "/api/financeiro", SubPath: "", Summary: "Cadastrar registro financeiro", Description: "Cria um novo registro financeiro"},
		{Method: "GET", BasePath: "/api/financeiro", SubPath: "", Summary: "Listar registros financeiros", Description: "Retorna uma lista com todos os registros financeiros"},
		{Method: "GET", BasePath: "/api/financeiro", SubPath: "/buscar/tipo/:tipo", Summary: "Buscar registros por tipo", Description: "Busca registros financeiros pelo tipo"},
		{Method: "GET", BasePath: "/api/financeiro", SubPath: "/buscar/membro/:membroId", Summary: "Buscar registros por membro", Description: "Busca registros financeiros de um membro"},
		{Method: "GET", BasePath: "/api/financeiro", SubPath: "/:id", Summary: "Buscar registro financeiro por ID", Description: "Busca um registro financeiro pelo seu ID"},
		{Method: "PUT", BasePath: "/api/financeiro", SubPath: "/:id", Summary: "Atualizar registro financeiro", Description: "Atualiza os dados de um registro financeiro existente"},
		{Method: "DELETE", BasePath: "/api/financeiro", SubPath: "/:id", Summary: "Deletar registro financeiro", Description: "Remove um registro financeiro do sistema"},

		// /api/assistencia-social
		{Method: "POST", BasePath: "/api/assistencia-social", SubPath: "", Summary: "Cadastrar registro de assistência social", Description: "Cria um novo registro de assistência social"},
		{Method: "GET", BasePath: "/api/assistencia-social", SubPath: "", Summary: "Listar registros de assistência social", Description: "Retorna uma lista paginada de registros de assistência social"},
		{Method: "GET", BasePath: "/api/assistencia-social", SubPath: "/:id", Summary: "Buscar registro de assistência social por ID", Description: "Busca um registro de assistência social pelo seu ID"},
		{Method: "PUT", BasePath: "/api/assistencia-social", SubPath: "/:id", Summary: "Atualizar registro de assistência social", Description: "Atualiza um registro de assistência social existente"},
		{Method: "DELETE", BasePath: "/api/assistencia-social", SubPath: "/:id", Summary: "Deletar registro de assistência social", Description: "Remove um registro de assistência social do sistema"},

		// /api/cep — ignored by discovery
		{Method: "GET", BasePath: "/api/cep", SubPath: "/:cep", Summary: "Buscar endereço por CEP", Description: "Consulta o endereço correspondente ao CEP informado"},
	}
}
