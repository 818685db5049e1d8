package pcd

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

// Criar cadastra o perfil PCD de um usuário já existente. Cada usuário tem
// no máximo um perfil.
func (s *Service) Criar(req CriarRequest) (*PCD, error) {
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

	jaTemPerfil, err := s.Repo.ExisteParaUsuario(s.DB, dados.UsuarioID)
	if err != nil {
		return nil, err
	}
	if jaTemPerfil {
		return nil, apperrors.JaExiste("PCD já existe para este usuário.")
	}

	p := &PCD{
		UsuarioID:              dados.UsuarioID,
		TipoDeficiencia:        dados.TipoDeficiencia,
		FormaLocomocao:         dados.FormaLocomocao,
		RecursosAcessibilidade: dados.RecursosAcessibilidade,
		Detalhes:               dados.Detalhes,
	}
	if err := s.Repo.Criar(s.DB, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("PCD já existe para este usuário.")
		}
		return nil, err
	}
	return p, nil
}

// BuscarPorUsuario retorna o perfil PCD dono do usuário informado.
func (s *Service) BuscarPorUsuario(usuarioID uuid.UUID) (*PCD, error) {
	p, err := s.Repo.BuscarPorUsuario(s.DB, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("PCD não encontrado.")
		}
		return nil, err
	}
	return p, nil
}

// Atualizar altera os campos enviados do perfil.
func (s *Service) Atualizar(usuarioID uuid.UUID, req AtualizarRequest) (*PCD, error) {
	p, err := s.BuscarPorUsuario(usuarioID)
	if err != nil {
		return nil, err
	}

	var c validation.Coletor
	if req.TipoDeficiencia != nil {
		if !validation.PertenceA(*req.TipoDeficiencia, TiposDeficiencia) {
			c.Adicionar("tipo_deficiencia", "Tipo de deficiência inválido")
		} else {
			p.TipoDeficiencia = *req.TipoDeficiencia
		}
	}
	if req.FormaLocomocao != nil {
		if !validation.PertenceA(*req.FormaLocomocao, FormasLocomocao) {
			c.Adicionar("forma_locomocao", "Forma de locomoção inválida")
		} else {
			p.FormaLocomocao = *req.FormaLocomocao
		}
	}
	if req.RecursosAcessibilidade != nil {
		if len(*req.RecursosAcessibilidade) == 0 {
			c.Adicionar("recursos_acessibilidade", "Selecione ao menos um recurso de acessibilidade")
		} else {
			for _, recurso := range *req.RecursosAcessibilidade {
				if !validation.PertenceA(recurso, RecursosAcessibilidade) {
					c.Adicionar("recursos_acessibilidade", "Recurso de acessibilidade inválido: "+recurso)
				}
			}
			p.RecursosAcessibilidade = *req.RecursosAcessibilidade
		}
	}
	if req.Detalhes != nil {
		if len([]rune(*req.Detalhes)) > 1000 {
			c.Adicionar("detalhes", "Detalhes deve ter no máximo 1000 caracteres")
		} else {
			p.Detalhes = *req.Detalhes
		}
	}
	if err := c.Erro(); err != nil {
		return nil, err
	}

	if err := s.Repo.Salvar(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListarTodos() ([]PCD, error) {
	return s.Repo.ListarTodos(s.DB)
}
