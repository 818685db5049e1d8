package favorito

import (
	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /favorito/.
type CriarRequest struct {
	UsuarioID string `json:"usuario_id"`
	LocalID   string `json:"local_id"`
	Apelido   string `json:"apelido"`
}

type CriarNormalizado struct {
	UsuarioID uuid.UUID
	LocalID   uuid.UUID
	Apelido   string
}

func (r CriarRequest) Validar() (CriarNormalizado, error) {
	var c validation.Coletor

	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		c.Adicionar("usuario_id", "usuario_id inválido")
	}
	localID, err := uuid.Parse(r.LocalID)
	if err != nil {
		c.Adicionar("local_id", "local_id inválido")
	}

	// O apelido é saneado antes de medir: caracteres especiais não contam
	apelido := ""
	if r.Apelido != "" {
		apelido = validation.LimparApelido(r.Apelido)
		if len([]rune(apelido)) < 2 {
			c.Adicionar("apelido", "Apelido deve ter pelo menos 2 caracteres")
		}
		if len([]rune(apelido)) > 50 {
			c.Adicionar("apelido", "Apelido deve ter no máximo 50 caracteres")
		}
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}
	return CriarNormalizado{UsuarioID: usuarioID, LocalID: localID, Apelido: apelido}, nil
}
