package favorito

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{DB: db, Repo: repo}
}

// Criar marca um local como favorito; o par (usuário, local) é único.
func (s *Service) Criar(req CriarRequest) (*Favorito, error) {
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

	jaFavoritado, err := s.Repo.ExisteParaUsuarioELocal(s.DB, dados.UsuarioID, dados.LocalID)
	if err != nil {
		return nil, err
	}
	if jaFavoritado {
		return nil, apperrors.JaExiste("Local já está nos favoritos")
	}

	f := &Favorito{
		UsuarioID: dados.UsuarioID,
		LocalID:   dados.LocalID,
		Apelido:   dados.Apelido,
	}
	if err := s.Repo.Criar(s.DB, f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("Local já está nos favoritos")
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) BuscarPorID(id uuid.UUID) (*Favorito, error) {
	f, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Favorito não encontrado")
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Buscar(usuarioID, localID uuid.UUID) (*Favorito, error) {
	f, err := s.Repo.BuscarPorUsuarioELocal(s.DB, usuarioID, localID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Favorito não encontrado")
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) ListarTodos() ([]Favorito, error) {
	return s.Repo.ListarTodos(s.DB)
}

func (s *Service) ListarPorUsuario(usuarioID uuid.UUID) ([]Favorito, error) {
	return s.Repo.ListarPorUsuario(s.DB, usuarioID)
}

func (s *Service) Deletar(id uuid.UUID) error {
	if err := s.Repo.Deletar(s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Favorito não encontrado")
		}
		return err
	}
	return nil
}
