package rota

import (
	"testing"

	"github.com/google/uuid"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

func TestValidarOrigemDestinoDistintos(t *testing.T) {
	base := CriarRequest{
		UsuarioID:  uuid.New().String(),
		OrigemLat:  -23.5505,
		OrigemLng:  -46.6333,
		DestinoLat: -23.5505,
		DestinoLng: -46.6333,
	}

	// Pontos idênticos são recusados
	if _, err := base.Validar(); !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Errorf("pontos idênticos: erro %v, esperado Validacao", err)
	}

	// Diferença abaixo do epsilon nos dois eixos ainda conta como o mesmo ponto
	quase := base
	quase.DestinoLat += EpsilonCoordenada / 2
	quase.DestinoLng += EpsilonCoordenada / 2
	if _, err := quase.Validar(); !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Errorf("diferença sub-epsilon: erro %v, esperado Validacao", err)
	}

	// Basta um eixo atingir o epsilon para os pontos serem distintos. O
	// deslocamento usa duas vezes o epsilon porque somar 0.0001 a uma
	// coordenada como -23.5505 produz uma diferença em float64 um pouco
	// abaixo do limiar.
	ok := base
	ok.DestinoLat += 2 * EpsilonCoordenada
	if _, err := ok.Validar(); err != nil {
		t.Errorf("diferença acima do epsilon em um eixo deveria passar: %v", err)
	}

	// Com origem em zero a diferença é exata e o limiar vale na igualdade
	exato := CriarRequest{
		UsuarioID:  uuid.New().String(),
		OrigemLat:  0,
		OrigemLng:  -46.0,
		DestinoLat: EpsilonCoordenada,
		DestinoLng: -46.0,
	}
	if _, err := exato.Validar(); err != nil {
		t.Errorf("diferença de exatamente um epsilon deveria passar: %v", err)
	}
}

func TestValidarCoordenadasForaDoIntervalo(t *testing.T) {
	req := CriarRequest{
		UsuarioID:  uuid.New().String(),
		OrigemLat:  -95.0,
		OrigemLng:  -200.0,
		DestinoLat: -23.5,
		DestinoLng: -46.6,
	}
	_, err := req.Validar()
	if !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Fatalf("coordenadas impossíveis: erro %v, esperado Validacao", err)
	}
}

func TestValidarUsuarioIDInvalido(t *testing.T) {
	req := CriarRequest{
		UsuarioID:  "não-é-uuid",
		OrigemLat:  -23.55,
		OrigemLng:  -46.63,
		DestinoLat: -23.56,
		DestinoLng: -46.65,
	}
	if _, err := req.Validar(); !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Errorf("usuario_id inválido: erro %v, esperado Validacao", err)
	}
}
