package rota

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
	"github.com/projetomogo/api-mogo/internal/geo"
)

const LimitePadraoListagem = 10

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{DB: db, Repo: repo}
}

// Criar valida a rota e persiste com a geometria de dois pontos. O score de
// acessibilidade nasce zerado; o preenchimento vem de um serviço externo.
func (s *Service) Criar(req CriarRequest) (*Rota, error) {
	dados, err := req.Validar()
	if err != nil {
		return nil, err
	}

	// Política de área de interesse: ambas as pontas dentro do Brasil
	if !geo.DentroDoBrasil(dados.OrigemLat, dados.OrigemLng) ||
		!geo.DentroDoBrasil(dados.DestinoLat, dados.DestinoLng) {
		return nil, apperrors.CoordenadaInvalida()
	}

	existe, err := s.Repo.UsuarioExiste(s.DB, dados.UsuarioID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, apperrors.NaoEncontrado("Usuário não encontrado")
	}

	r := &Rota{
		UsuarioID:  dados.UsuarioID,
		OrigemLat:  dados.OrigemLat,
		OrigemLng:  dados.OrigemLng,
		DestinoLat: dados.DestinoLat,
		DestinoLng: dados.DestinoLng,
	}
	if err := s.Repo.Criar(s.DB, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) BuscarPorID(id uuid.UUID) (*Rota, error) {
	r, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Rota não encontrada")
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) ListarPorUsuario(usuarioID uuid.UUID, limite int) ([]Rota, error) {
	if limite <= 0 {
		limite = LimitePadraoListagem
	}
	return s.Repo.ListarPorUsuario(s.DB, usuarioID, limite)
}

func (s *Service) Deletar(id uuid.UUID) error {
	if err := s.Repo.Deletar(s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Rota não encontrada")
		}
		return err
	}
	return nil
}
