package pcd

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type fakeRepo struct {
	porUsuario map[uuid.UUID]*PCD
	usuarios   map[uuid.UUID]bool
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{porUsuario: map[uuid.UUID]*PCD{}, usuarios: map[uuid.UUID]bool{}}
}

func (f *fakeRepo) Criar(db *gorm.DB, p *PCD) error {
	if _, ok := f.porUsuario[p.UsuarioID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.porUsuario[p.UsuarioID] = p
	return nil
}

func (f *fakeRepo) Salvar(db *gorm.DB, p *PCD) error {
	f.porUsuario[p.UsuarioID] = p
	return nil
}

func (f *fakeRepo) BuscarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) (*PCD, error) {
	p, ok := f.porUsuario[usuarioID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) ExisteParaUsuario(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	_, ok := f.porUsuario[usuarioID]
	return ok, nil
}

func (f *fakeRepo) ListarTodos(db *gorm.DB) ([]PCD, error) { return nil, nil }

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
		UsuarioID:              usuarioID.String(),
		TipoDeficiencia:        "fisica",
		FormaLocomocao:         "cadeira_rodas",
		RecursosAcessibilidade: []string{"rampas", "elevadores"},
	}
}

func TestCriarPerfilUnicoPorUsuario(t *testing.T) {
	s, usuarioID := novoService()

	if _, err := s.Criar(requisicao(usuarioID)); err != nil {
		t.Fatalf("primeiro perfil falhou: %v", err)
	}

	_, err := s.Criar(requisicao(usuarioID))
	if !apperrors.EhTipo(err, apperrors.TipoJaExiste) {
		t.Errorf("segundo perfil para o mesmo usuário: erro %v, esperado JaExiste", err)
	}
}

func TestCriarPerfilUsuarioInexistente(t *testing.T) {
	s, _ := novoService()

	_, err := s.Criar(requisicao(uuid.New()))
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("usuário desconhecido: erro %v, esperado NaoEncontrado", err)
	}
}

func TestCriarPerfilSemRecursos(t *testing.T) {
	s, usuarioID := novoService()

	req := requisicao(usuarioID)
	req.RecursosAcessibilidade = nil
	_, err := s.Criar(req)
	if !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Errorf("perfil sem recursos: erro %v, esperado Validacao", err)
	}
}

func TestCriarPerfilEnumInvalido(t *testing.T) {
	s, usuarioID := novoService()

	req := requisicao(usuarioID)
	req.TipoDeficiencia = "temporaria"
	req.RecursosAcessibilidade = []string{"teletransporte"}
	_, err := s.Criar(req)
	if !apperrors.EhTipo(err, apperrors.TipoValidacao) {
		t.Errorf("enums inválidos: erro %v, esperado Validacao", err)
	}
}

func TestAtualizarPerfil(t *testing.T) {
	s, usuarioID := novoService()

	if _, err := s.Criar(requisicao(usuarioID)); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	forma := "muletas"
	atualizado, err := s.Atualizar(usuarioID, AtualizarRequest{FormaLocomocao: &forma})
	if err != nil {
		t.Fatalf("atualização falhou: %v", err)
	}
	if atualizado.FormaLocomocao != "muletas" {
		t.Errorf("forma de locomoção = %q", atualizado.FormaLocomocao)
	}
	// O que não foi enviado permanece
	if atualizado.TipoDeficiencia != "fisica" {
		t.Errorf("tipo de deficiência = %q, deveria seguir %q", atualizado.TipoDeficiencia, "fisica")
	}

	_, err = s.Atualizar(uuid.New(), AtualizarRequest{FormaLocomocao: &forma})
	if !apperrors.EhTipo(err, apperrors.TipoNaoEncontrado) {
		t.Errorf("atualizar perfil inexistente: erro %v, esperado NaoEncontrado", err)
	}
}
