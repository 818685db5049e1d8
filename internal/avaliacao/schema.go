package avaliacao

import (
	"github.com/google/uuid"
	"github.com/projetomogo/api-mogo/internal/validation"
)

// CriarRequest é o corpo de POST /avaliacao/.
type CriarRequest struct {
	UsuarioID  string `json:"usuario_id"`
	LocalID    string `json:"local_id"`
	Nota       int    `json:"nota"`
	Comentario string `json:"comentario"`
}

type CriarNormalizado struct {
	UsuarioID  uuid.UUID
	LocalID    uuid.UUID
	Nota       int
	Comentario string
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

	if r.Nota < 1 || r.Nota > 5 {
		c.Adicionar("nota", "Nota deve estar entre 1 e 5")
	}
	if len([]rune(r.Comentario)) > 1000 {
		c.Adicionar("comentario", "Comentário deve ter no máximo 1000 caracteres")
	}

	// Notas extremas exigem comentário para serem úteis
	if !c.TemErros() && r.Comentario == "" {
		switch r.Nota {
		case 1:
			c.Adicionar("comentario", "Avaliações com nota 1 devem incluir um comentário explicando os problemas")
		case 5:
			c.Adicionar("comentario", "Avaliações com nota 5 devem incluir um comentário detalhando os pontos positivos")
		}
	}

	if err := c.Erro(); err != nil {
		return CriarNormalizado{}, err
	}
	return CriarNormalizado{
		UsuarioID:  usuarioID,
		LocalID:    localID,
		Nota:       r.Nota,
		Comentario: r.Comentario,
	}, nil
}
