package terceiro

import (
	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /terceiro/.
type CriarRequest struct {
	UsuarioID                   string `json:"usuario_id"`
	Relacao                     string `json:"relacao"`
	PCDAssistidaTipoDeficiencia string `json:"pcd_assistida_tipo_deficiencia"`
	Descricao                   string `json:"descricao"`
}

type CriarNormalizado struct {
	UsuarioID                   uuid.UUID
	Relacao                     string
	PCDAssistidaTipoDeficiencia string
	Descricao                   string
}

func (r CriarRequest) Validar() (CriarNormalizado, error) {
	var c validation.Coletor

	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		c.Adicionar("usuario_id", "usuario_id inválido")
	}
	if !validation.PertenceA(r.Relacao, TiposRelacao) {
		c.Adicionar("relacao", "Tipo de relação inválido")
	}
	if !validation.PertenceA(r.PCDAssistidaTipoDeficiencia, TiposDeficienciaAssistida) {
		c.Adicionar("pcd_assistida_tipo_deficiencia", "Tipo de deficiência inválido")
	}
	if len([]rune(r.Descricao)) > 500 {
		c.Adicionar("descricao", "Descrição deve ter no máximo 500 caracteres")
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}
	return CriarNormalizado{
		UsuarioID:                   usuarioID,
		Relacao:                     r.Relacao,
		PCDAssistidaTipoDeficiencia: r.PCDAssistidaTipoDeficiencia,
		Descricao:                   r.Descricao,
	}, nil
}

// AtualizarRequest é o corpo de PUT/PATCH /terceiro/{id}/.
type AtualizarRequest struct {
	Relacao   *string `json:"relacao"`
	Descricao *string `json:"descricao"`
}
