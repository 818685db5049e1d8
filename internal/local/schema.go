package local

import (
	"strings"

	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /local/.
type CriarRequest struct {
	Nome      string  `json:"nome"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TipoLocal string  `json:"tipo_local"`
}

func (r CriarRequest) Validar() error {
	var c validation.Coletor

	nome := strings.TrimSpace(r.Nome)
	if len([]rune(nome)) < 2 || len([]rune(nome)) > 200 {
		c.Adicionar("nome", "Nome deve ter entre 2 e 200 caracteres")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		c.Adicionar("latitude", "Latitude deve estar entre -90 e 90")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		c.Adicionar("longitude", "Longitude deve estar entre -180 e 180")
	}
	if !validation.PertenceA(r.TipoLocal, TiposLocal) {
		c.Adicionar("tipo_local", "Tipo de local inválido")
	}

	return c.Erro()
}
