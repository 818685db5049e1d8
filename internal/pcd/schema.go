package pcd

import (
	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /pcd/.
type CriarRequest struct {
	UsuarioID              string   `json:"usuario_id"`
	TipoDeficiencia        string   `json:"tipo_deficiencia"`
	FormaLocomocao         string   `json:"forma_locomocao"`
	RecursosAcessibilidade []string `json:"recursos_acessibilidade"`
	Detalhes               string   `json:"detalhes"`
}

type CriarNormalizado struct {
	UsuarioID              uuid.UUID
	TipoDeficiencia        string
	FormaLocomocao         string
	RecursosAcessibilidade []string
	Detalhes               string
}

func (r CriarRequest) Validar() (CriarNormalizado, error) {
	var c validation.Coletor

	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		c.Adicionar("usuario_id", "usuario_id inválido")
	}

	if !validation.PertenceA(r.TipoDeficiencia, TiposDeficiencia) {
		c.Adicionar("tipo_deficiencia", "Tipo de deficiência inválido")
	}
	if !validation.PertenceA(r.FormaLocomocao, FormasLocomocao) {
		c.Adicionar("forma_locomocao", "Forma de locomoção inválida")
	}

	if len(r.RecursosAcessibilidade) == 0 {
		c.Adicionar("recursos_acessibilidade", "Selecione ao menos um recurso de acessibilidade")
	}
	for _, recurso := range r.RecursosAcessibilidade {
		if !validation.PertenceA(recurso, RecursosAcessibilidade) {
			c.Adicionar("recursos_acessibilidade", "Recurso de acessibilidade inválido: "+recurso)
		}
	}

	if len([]rune(r.Detalhes)) > 1000 {
		c.Adicionar("detalhes", "Detalhes deve ter no máximo 1000 caracteres")
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}

	return CriarNormalizado{
		UsuarioID:              usuarioID,
		TipoDeficiencia:        r.TipoDeficiencia,
		FormaLocomocao:         r.FormaLocomocao,
		RecursosAcessibilidade: r.RecursosAcessibilidade,
		Detalhes:               r.Detalhes,
	}, nil
}

// AtualizarRequest é o corpo de PUT/PATCH /pcd/{usuarioId}/.
type AtualizarRequest struct {
	TipoDeficiencia        *string   `json:"tipo_deficiencia"`
	FormaLocomocao         *string   `json:"forma_locomocao"`
	RecursosAcessibilidade *[]string `json:"recursos_acessibilidade"`
	Detalhes               *string   `json:"detalhes"`
}
