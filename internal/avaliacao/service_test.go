package avaliacao

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type chave struct {
	usuario uuid.UUID
	local   uuid.UUID
}

type fakeRepo struct {
	porID    map[uuid.UUID]*Avaliacao
	porChave map[chave]*Avaliacao
	usuarios map[uuid.UUID]bool
	locais   map[uuid.UUID]bool
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{
		porID:    map[uuid.UUID]*Avaliacao{},
		porChave: map[chave]*Avaliacao{},
		usuarios: map[uuid.UUID]bool{},
		locais:   map[uuid.UUID]bool{},
	}
}

func (f *fakeRepo) Criar(db *gorm.DB, a *Avaliacao) error {
	k := chave{a.UsuarioID, a.LocalID}
	if _, ok := f.porChave[k]; ok {
		return gorm.ErrDuplicatedKey
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.porID[a.ID] = a
	f.porChave[k] = a
	return nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Avaliacao, error) {
	a, ok := f.porID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeRepo) BuscarPorUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (*Avaliacao, error) {
	a, ok := f.porChave[chave{usuarioID, localID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeRepo) ExisteParaUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (bool, error) {
	_, ok := f.porChave[chave{usuarioID, localID}]
	return ok, nil
}

func (f *fakeRepo) ListarTodas(db *gorm.DB) ([]Avaliacao, error) { return nil, nil }

func (f *fakeRepo) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Avaliacao, error) {
	var avaliacoes []Avaliacao
	for _, a := range f.porID {
		if a.UsuarioID == usuarioID && len(avaliacoes) < limite {
			avaliacoes = append(avaliacoes, *a)
		}
	}
	return avaliacoes, nil
}

func (f *fakeRepo) ListarPorLocal(db *gorm.DB, localID uuid.UUID, limite int) ([]Avaliacao, error) {
	var avaliacoes []Avaliacao
	for _, a := range f.porID {
		if a.LocalID == localID && len(avaliacoes) < limite {
			avaliacoes = append(avaliacoes, *a)
		}
	}
	return avaliacoes, nil
}

func (f *fakeRepo) MediaPorLocal(db *gorm.DB, localID uuid.UUID) (Media, error) {
	var soma, total int64
	for _, a := range f.porID {
		if a.LocalID == localID {
			soma += int64(a.Nota)
			total++
		}
	}
	if total == 0 {
		return Media{}, nil
	}
	return Media{MediaNota: float64(soma) / float64(total), TotalAvaliacoes: total}, nil
}

func (f *fakeRepo) Deletar(db *gorm.DB, id uuid.UUID) error {
	a, ok := f.porID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.porChave, chave{a.UsuarioID, a.LocalID})
	delete(f.porID, id)
	return nil
}

func (f *fakeRepo) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	return f.usuarios[usuarioID], nil
}

func (f *fakeRepo) LocalExiste(db *gorm.DB, localID uuid.UUID) (bool, error) {
	return f.locais[localID], nil
}

func novoService() (*Service, uuid.UUID, uuid.UUID) {
	repo := novoFakeRepo()
	usuarioID, localID := uuid.New(), uuid.New()
	repo.usuarios[usuarioID] = true
	repo.locais[localID] = true
	return NewService(nil, repo), usuarioID, localID
}

func TestCriarAvaliacaoUmaPorUsuarioELocal(t *testing.T) {
	s, usuarioID, localID := novoService()

	req := CriarRequest{
		UsuarioID: usuarioID.String(),
		LocalID:   localID.String(),
		Nota:      4,
	}
	if _, err := s.Criar(req); err != nil {
		t.Fatalf("primeira avaliação falhou: %v", err)
	}

	_, err := s.Criar(req)
	if !apperrors.EhTipo(err, apperrors.TipoJaExiste) {
		t.Errorf("segunda avaliação do mesmo local: erro %v, esperado JaExiste", err)
	}
}

func TestCriarAvaliacaoLocalInexistente(t *testing.T) {
	s, usuarioID, _ := novoService()

	_, err := s.Criar(CriarRequest{
		UsuarioID: usuarioID.String(),
		LocalID:   uuid.New().String(),
		Nota:      3,
	})
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("local desconhecido: erro %v, esperado NaoEncontrado", err)
	}
}

func TestDeletarAvaliacaoInexistente(t *testing.T) {
	s, _, _ := novoService()

	err := s.Deletar(uuid.New())
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("deleção de avaliação inexistente: erro %v, esperado NaoEncontrado", err)
	}
}

func TestMediaPorLocal(t *testing.T) {
	s, usuarioID, localID := novoService()

	repo := s.Repo.(*fakeRepo)
	outroUsuario := uuid.New()
	repo.usuarios[outroUsuario] = true

	avaliacoes := []CriarRequest{
		{UsuarioID: usuarioID.String(), LocalID: localID.String(), Nota: 5, Comentario: "Rampas novas e piso tátil em todo o percurso."},
		{UsuarioID: outroUsuario.String(), LocalID: localID.String(), Nota: 2},
	}
	for _, req := range avaliacoes {
		if _, err := s.Criar(req); err != nil {
			t.Fatalf("avaliação %+v falhou: %v", req, err)
		}
	}

	media, err := s.MediaPorLocal(localID)
	if err != nil {
		t.Fatalf("média falhou: %v", err)
	}
	if media.TotalAvaliacoes != 2 || media.MediaNota != 3.5 {
		t.Errorf("média = %+v, esperado 3.5 com 2 avaliações", media)
	}
}
