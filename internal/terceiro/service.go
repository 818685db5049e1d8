package terceiro

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
	"github.com/projetomogo/api-mogo/internal/validation"
)

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{DB: db, Repo: repo}
}

// Criar cadastra um terceiro/cuidador para um usuário. A unicidade vale
// por par (usuário, relação).
func (s *Service) Criar(req CriarRequest) (*Terceiro, error) {
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

	jaExiste, err := s.Repo.ExisteParaUsuarioERelacao(s.DB, dados.UsuarioID, dados.Relacao)
	if err != nil {
		return nil, err
	}
	if jaExiste {
		return nil, apperrors.JaExiste("Já existe um terceiro com esta relação para o usuário.")
	}

	t := &Terceiro{
		UsuarioID:                   dados.UsuarioID,
		Relacao:                     dados.Relacao,
		PCDAssistidaTipoDeficiencia: dados.PCDAssistidaTipoDeficiencia,
		Descricao:                   dados.Descricao,
	}
	if err := s.Repo.Criar(s.DB, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("Já existe um terceiro com esta relação para o usuário.")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) BuscarPorID(id uuid.UUID) (*Terceiro, error) {
	t, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Terceiro não encontrado")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ListarTodos() ([]Terceiro, error) {
	return s.Repo.ListarTodos(s.DB)
}

func (s *Service) ListarPorUsuario(usuarioID uuid.UUID) ([]Terceiro, error) {
	return s.Repo.ListarPorUsuario(s.DB, usuarioID)
}

// Atualizar altera relação e descrição de um terceiro existente.
func (s *Service) Atualizar(id uuid.UUID, req AtualizarRequest) (*Terceiro, error) {
	t, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	var c validation.Coletor
	if req.Relacao != nil {
		if !validation.PertenceA(*req.Relacao, TiposRelacao) {
			c.Adicionar("relacao", "Tipo de relação inválido")
		} else {
			t.Relacao = *req.Relacao
		}
	}
	if req.Descricao != nil {
		if len([]rune(*req.Descricao)) > 500 {
			c.Adicionar("descricao", "Descrição deve ter no máximo 500 caracteres")
		} else {
			t.Descricao = *req.Descricao
		}
	}
	if err := c.Erro(); err != nil {
		return nil, err
	}

	if err := s.Repo.Salvar(s.DB, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("Já existe um terceiro com esta relação para o usuário.")
		}
		return nil, err
	}
	return t, nil
}

// Deletar remove o terceiro; ausência vira NaoEncontrado, nunca sucesso
// silencioso.
func (s *Service) Deletar(id uuid.UUID) error {
	if err := s.Repo.Deletar(s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Terceiro não encontrado")
		}
		return err
	}
	return nil
}
