package historico

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

const LimitePadraoListagem = 20

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{DB: db, Repo: repo}
}

// Criar registra um evento de busca.
func (s *Service) Criar(req CriarRequest) (*HistoricoBusca, error) {
	dados, err := req.Validar()
	if err != nil {
		return nil, err
	}

	existe, err := s.Repo.UsuarioExiste(s.DB, dados.UsuarioID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, apperrors.NaoEncontrado("Usuário não encontrado")
	}

	h := &HistoricoBusca{
		UsuarioID:    dados.UsuarioID,
		OrigemTexto:  dados.OrigemTexto,
		DestinoTexto: dados.DestinoTexto,
		OrigemLat:    dados.OrigemLat,
		OrigemLng:    dados.OrigemLng,
		DestinoLat:   dados.DestinoLat,
		DestinoLng:   dados.DestinoLng,
	}
	if err := s.Repo.Criar(s.DB, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) ListarPorUsuario(usuarioID uuid.UUID, limite int) ([]HistoricoBusca, error) {
	if limite <= 0 {
		limite = LimitePadraoListagem
	}
	return s.Repo.ListarPorUsuario(s.DB, usuarioID, limite)
}
