package historico

import (
	"strings"

	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /historico/.
type CriarRequest struct {
	UsuarioID    string   `json:"usuario_id"`
	OrigemTexto  string   `json:"origem_texto"`
	DestinoTexto string   `json:"destino_texto"`
	OrigemLat    *float64 `json:"origem_lat"`
	OrigemLng    *float64 `json:"origem_lng"`
	DestinoLat   *float64 `json:"destino_lat"`
	DestinoLng   *float64 `json:"destino_lng"`
}

type CriarNormalizado struct {
	UsuarioID    uuid.UUID
	OrigemTexto  string
	DestinoTexto string
	OrigemLat    *float64
	OrigemLng    *float64
	DestinoLat   *float64
	DestinoLng   *float64
}

func (r CriarRequest) Validar() (CriarNormalizado, error) {
	var c validation.Coletor

	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		c.Adicionar("usuario_id", "usuario_id inválido")
	}

	origem := strings.TrimSpace(r.OrigemTexto)
	destino := strings.TrimSpace(r.DestinoTexto)
	if origem == "" || len([]rune(origem)) > 300 {
		c.Adicionar("origem_texto", "Origem deve ter entre 1 e 300 caracteres")
	}
	if destino == "" || len([]rune(destino)) > 300 {
		c.Adicionar("destino_texto", "Destino deve ter entre 1 e 300 caracteres")
	}

	if !c.TemErros() && strings.EqualFold(origem, destino) {
		c.Adicionar("destino_texto", "Origem e destino devem ser diferentes")
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}
	return CriarNormalizado{
		UsuarioID:    usuarioID,
		OrigemTexto:  origem,
		DestinoTexto: destino,
		OrigemLat:    r.OrigemLat,
		OrigemLng:    r.OrigemLng,
		DestinoLat:   r.DestinoLat,
		DestinoLng:   r.DestinoLng,
	}, nil
}
