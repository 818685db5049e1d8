package avaliacao

import (
	"testing"

	"github.com/google/uuid"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

func requisicaoNota(nota int, comentario string) CriarRequest {
	return CriarRequest{
		UsuarioID:  uuid.New().String(),
		LocalID:    uuid.New().String(),
		Nota:       nota,
		Comentario: comentario,
	}
}

func TestValidarNotasExtremasExigemComentario(t *testing.T) {
	for _, nota := range []int{1, 5} {
		if _, err := requisicaoNota(nota, "").Validar(); !apperrors.EhTipo(err, apperrors.TipoValidacao) {
			t.Errorf("nota %d sem comentário: erro %v, esperado Validacao", nota, err)
		}
	}

	if _, err := requisicaoNota(1, "Sem rampa de acesso na entrada principal.").Validar(); err != nil {
		t.Errorf("nota 1 com comentário deveria passar: %v", err)
	}
	if _, err := requisicaoNota(5, "Elevadores funcionando e equipe atenciosa.").Validar(); err != nil {
		t.Errorf("nota 5 com comentário deveria passar: %v", err)
	}
}

func TestValidarNotasIntermediariasDispensamComentario(t *testing.T) {
	for _, nota := range []int{2, 3, 4} {
		if _, err := requisicaoNota(nota, "").Validar(); err != nil {
			t.Errorf("nota %d sem comentário deveria passar: %v", nota, err)
		}
	}
}

func TestValidarNotaForaDoIntervalo(t *testing.T) {
	for _, nota := range []int{0, 6, -1} {
		if _, err := requisicaoNota(nota, "qualquer").Validar(); !apperrors.EhTipo(err, apperrors.TipoValidacao) {
			t.Errorf("nota %d: esperado Validacao", nota)
		}
	}
}
