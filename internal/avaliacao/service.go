package avaliacao

import (
	"errors"

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

// Criar cadastra uma avaliação; cada usuário avalia um local uma única vez.
func (s *Service) Criar(req CriarRequest) (*Avaliacao, error) {
	dados, err := req.Validar()
	if err != nil {
		return nil, err
	}

	usuarioExiste, err := s.Repo.UsuarioExiste(s.DB, dados.UsuarioID)
	if err != nil {
		return nil, err
	}
	if !usuarioExiste {
		return nil, apperrors.NaoEncontrado("Usuário não encontrado")
	}
	localExiste, err := s.Repo.LocalExiste(s.DB, dados.LocalID)
	if err != nil {
		return nil, err
	}
	if !localExiste {
		return nil, apperrors.NaoEncontrado("Local não encontrado")
	}

	jaAvaliou, err := s.Repo.ExisteParaUsuarioELocal(s.DB, dados.UsuarioID, dados.LocalID)
	if err != nil {
		return nil, err
	}
	if jaAvaliou {
		return nil, apperrors.JaExiste("Você já avaliou este local")
	}

	a := &Avaliacao{
		UsuarioID:  dados.UsuarioID,
		LocalID:    dados.LocalID,
		Nota:       dados.Nota,
		Comentario: dados.Comentario,
	}
	if err := s.Repo.Criar(s.DB, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("Você já avaliou este local")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) BuscarPorID(id uuid.UUID) (*Avaliacao, error) {
	a, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Avaliação não encontrada")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Buscar(usuarioID, localID uuid.UUID) (*Avaliacao, error) {
	a, err := s.Repo.BuscarPorUsuarioELocal(s.DB, usuarioID, localID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Avaliação não encontrada")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListarTodas() ([]Avaliacao, error) {
	return s.Repo.ListarTodas(s.DB)
}

func (s *Service) ListarPorUsuario(usuarioID uuid.UUID, limite int) ([]Avaliacao, error) {
	if limite <= 0 {
		limite = LimitePadraoListagem
	}
	return s.Repo.ListarPorUsuario(s.DB, usuarioID, limite)
}

func (s *Service) ListarPorLocal(localID uuid.UUID, limite int) ([]Avaliacao, error) {
	if limite <= 0 {
		limite = LimitePadraoListagem
	}
	return s.Repo.ListarPorLocal(s.DB, localID, limite)
}

func (s *Service) MediaPorLocal(localID uuid.UUID) (Media, error) {
	return s.Repo.MediaPorLocal(s.DB, localID)
}

func (s *Service) Deletar(id uuid.UUID) error {
	if err := s.Repo.Deletar(s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Avaliação não encontrada")
		}
		return err
	}
	return nil
}
