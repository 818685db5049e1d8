package rota

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type fakeRepo struct {
	rotas    map[uuid.UUID]*Rota
	usuarios map[uuid.UUID]bool
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{rotas: map[uuid.UUID]*Rota{}, usuarios: map[uuid.UUID]bool{}}
}

func (f *fakeRepo) Criar(db *gorm.DB, r *Rota) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.rotas[r.ID] = r
	return nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Rota, error) {
	r, ok := f.rotas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Rota, error) {
	var rotas []Rota
	for _, r := range f.rotas {
		if r.UsuarioID == usuarioID && len(rotas) < limite {
			rotas = append(rotas, *r)
		}
	}
	return rotas, nil
}

func (f *fakeRepo) Deletar(db *gorm.DB, id uuid.UUID) error {
	if _, ok := f.rotas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rotas, id)
	return nil
}

func (f *fakeRepo) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	return f.usuarios[usuarioID], nil
}

func novoService() (*Service, uuid.UUID) {
	repo := novoFakeRepo()
	usuarioID := uuid.New()
	repo.usuarios[usuarioID] = true
	return NewService(nil, repo), usuarioID
}

func requisicao(usuarioID uuid.UUID) CriarRequest {
	return CriarRequest{
		UsuarioID:  usuarioID.String(),
		OrigemLat:  -23.5505,
		OrigemLng:  -46.6333,
		DestinoLat: -23.5614,
		DestinoLng: -46.6559,
	}
}

func TestCriarRotaValida(t *testing.T) {
	s, usuarioID := novoService()

	r, err := s.Criar(requisicao(usuarioID))
	if err != nil {
		t.Fatalf("rota válida falhou: %v", err)
	}
	if r.ScoreAcessibilidade != 0 {
		t.Errorf("score inicial = %v, esperado 0", r.ScoreAcessibilidade)
	}
	if r.DistanciaEstimadaKm() <= 0 {
		t.Errorf("distância estimada = %v, esperado positiva", r.DistanciaEstimadaKm())
	}
}

func TestCriarRotaForaDoBrasil(t *testing.T) {
	s, usuarioID := novoService()

	// Bordas exatas da caixa delimitadora ainda são aceitas
	req := requisicao(usuarioID)
	req.OrigemLat, req.OrigemLng = -34.0, -32.0
	if _, err := s.Criar(req); err != nil {
		t.Errorf("borda exata da caixa deveria ser aceita: %v", err)
	}

	req = requisicao(usuarioID)
	req.DestinoLat, req.DestinoLng = -35.0, -46.0
	_, err := s.Criar(req)
	if !apperrors.EhTipo(err, apperrors.TipoCoordenadaInvalida) {
		t.Errorf("destino fora do Brasil: erro %v, esperado CoordenadaInvalida", err)
	}

	req = requisicao(usuarioID)
	req.OrigemLng = -31.0
	_, err = s.Criar(req)
	if !apperrors.EhTipo(err, apperrors.TipoCoordenadaInvalida) {
		t.Errorf("origem fora do Brasil: erro %v, esperado CoordenadaInvalida", err)
	}
}

func TestCriarRotaUsuarioInexistente(t *testing.T) {
	s, _ := novoService()

	_, err := s.Criar(requisicao(uuid.New()))
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("usuário desconhecido: erro %v, esperado NaoEncontrado", err)
	}
}

func TestDeletarRotaInexistente(t *testing.T) {
	s, _ := novoService()

	err := s.Deletar(uuid.New())
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("deleção de rota inexistente: erro %v, esperado NaoEncontrado", err)
	}
}
