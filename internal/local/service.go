package local

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
	"github.com/projetomogo/api-mogo/internal/geo"
)

const RaioPadraoKm = 5.0

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{DB: db, Repo: repo}
}

// Criar cadastra um local, recusando pontos praticamente coincidentes com
// um local já existente.
func (s *Service) Criar(req CriarRequest) (*Local, error) {
	if err := req.Validar(); err != nil {
		return nil, err
	}

	duplicado, err := s.Repo.ExisteProximo(s.DB, req.Latitude, req.Longitude, RaioDuplicataGraus)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, apperrors.JaExiste("Já existe um local cadastrado neste ponto.")
	}

	l := &Local{
		Nome:      strings.TrimSpace(req.Nome),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		TipoLocal: req.TipoLocal,
	}
	if err := s.Repo.Criar(s.DB, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) BuscarPorID(id uuid.UUID) (*Local, error) {
	l, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Local não encontrado")
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) ListarTodos() ([]Local, error) {
	return s.Repo.ListarTodos(s.DB)
}

// BuscarProximos retorna os locais dentro do raio em km, convertido para
// graus pela aproximação de 111 km por grau.
func (s *Service) BuscarProximos(lat, lng, raioKm float64) ([]Local, error) {
	if !geo.CoordenadaValida(lat, lng) {
		return nil, apperrors.CoordenadaInvalida()
	}
	if raioKm <= 0 {
		raioKm = RaioPadraoKm
	}
	return s.Repo.BuscarProximos(s.DB, lat, lng, raioKm*geo.GrausPorKm)
}
