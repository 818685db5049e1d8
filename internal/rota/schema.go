package rota

import (
	"math"

	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// Diferença mínima, por eixo, para origem e destino contarem como pontos
// distintos.
const EpsilonCoordenada = 0.0001

// CriarRequest é o corpo de POST /rota/.
type CriarRequest struct {
	UsuarioID  string  `json:"usuario_id"`
	OrigemLat  float64 `json:"origem_lat"`
	OrigemLng  float64 `json:"origem_lng"`
	DestinoLat float64 `json:"destino_lat"`
	DestinoLng float64 `json:"destino_lng"`
}

type CriarNormalizado struct {
	UsuarioID  uuid.UUID
	OrigemLat  float64
	OrigemLng  float64
	DestinoLat float64
	DestinoLng float64
}

func (r CriarRequest) Validar() (CriarNormalizado, error) {
	var c validation.Coletor

	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		c.Adicionar("usuario_id", "usuario_id inválido")
	}
	validarEixo(&c, "origem_lat", r.OrigemLat, 90)
	validarEixo(&c, "origem_lng", r.OrigemLng, 180)
	validarEixo(&c, "destino_lat", r.DestinoLat, 90)
	validarEixo(&c, "destino_lng", r.DestinoLng, 180)

	// Regra cruzada: origem e destino devem ser pontos distintos
	if !c.TemErros() {
		if math.Abs(r.OrigemLat-r.DestinoLat) < EpsilonCoordenada &&
			math.Abs(r.OrigemLng-r.DestinoLng) < EpsilonCoordenada {
			c.Adicionar("destino_lat", "Origem e destino devem ser diferentes")
		}
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}
	return CriarNormalizado{
		UsuarioID:  usuarioID,
		OrigemLat:  r.OrigemLat,
		OrigemLng:  r.OrigemLng,
		DestinoLat: r.DestinoLat,
		DestinoLng: r.DestinoLng,
	}, nil
}

func validarEixo(c *validation.Coletor, campo string, valor, limite float64) {
	if valor < -limite || valor > limite {
		c.Adicionar(campo, "Coordenada fora do intervalo permitido")
	}
}
