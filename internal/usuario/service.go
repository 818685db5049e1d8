package usuario

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
	"github.com/projetomogo/api-mogo/internal/pcd"
	"github.com/projetomogo/api-mogo/internal/utils"
	"github.com/projetomogo/api-mogo/internal/validation"
)

type Service struct {
	DB      *gorm.DB
	Repo    Repository
	PCDRepo pcd.Repository
}

func NewService(db *gorm.DB, repo Repository, pcdRepo pcd.Repository) *Service {
	return &Service{DB: db, Repo: repo, PCDRepo: pcdRepo}
}

// ResultadoLogin carrega o usuário autenticado e as flags de perfil que vão
// para as claims do token.
type ResultadoLogin struct {
	Usuario    *Usuario
	IsPCD      bool
	IsTerceiro bool
}

// Registrar valida o cadastro, confere unicidade do email e persiste o
// usuário com a senha já em hash. A corrida entre a checagem e o insert é
// resolvida pelo constraint único do banco, re-reportado como JaExiste.
func (s *Service) Registrar(req RegistroRequest) (*Usuario, error) {
	dados, err := req.Validar()
	if err != nil {
		return nil, err
	}

	existe, err := s.Repo.EmailExiste(s.DB, dados.Email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.JaExiste("O email já pertence a um usuário.")
	}

	hash, err := utils.HashSenha(dados.Password)
	if err != nil {
		return nil, err
	}

	u := &Usuario{
		Nome:       dados.NomeCompleto,
		Email:      dados.Email,
		Senha:      hash,
		FotoPerfil: dados.FotoPerfil,
		Bio:        dados.Bio,
	}
	if err := s.Repo.Criar(s.DB, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.JaExiste("O email já pertence a um usuário.")
		}
		return nil, err
	}
	return u, nil
}

// RegistrarComPCD cria o usuário e o perfil PCD na mesma transação.
func (s *Service) RegistrarComPCD(reqUsuario RegistroRequest, reqPCD pcd.CriarRequest) (*Usuario, *pcd.PCD, error) {
	dadosUsuario, err := reqUsuario.Validar()
	if err != nil {
		return nil, nil, err
	}

	// O usuario_id do perfil só existe depois do insert; valida os demais
	// campos antes de abrir a transação.
	reqPCD.UsuarioID = uuid.Nil.String()
	dadosPCD, err := reqPCD.Validar()
	if err != nil {
		return nil, nil, err
	}

	existe, err := s.Repo.EmailExiste(s.DB, dadosUsuario.Email)
	if err != nil {
		return nil, nil, err
	}
	if existe {
		return nil, nil, apperrors.JaExiste("O email já pertence a um usuário.")
	}

	hash, err := utils.HashSenha(dadosUsuario.Password)
	if err != nil {
		return nil, nil, err
	}

	u := &Usuario{
		Nome:       dadosUsuario.NomeCompleto,
		Email:      dadosUsuario.Email,
		Senha:      hash,
		FotoPerfil: dadosUsuario.FotoPerfil,
		Bio:        dadosUsuario.Bio,
	}
	perfil := &pcd.PCD{
		TipoDeficiencia:        dadosPCD.TipoDeficiencia,
		FormaLocomocao:         dadosPCD.FormaLocomocao,
		RecursosAcessibilidade: dadosPCD.RecursosAcessibilidade,
		Detalhes:               dadosPCD.Detalhes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Criar(tx, u); err != nil {
			return err
		}
		perfil.UsuarioID = u.ID
		return s.PCDRepo.Criar(tx, perfil)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperrors.JaExiste("O email já pertence a um usuário.")
		}
		return nil, nil, err
	}
	return u, perfil, nil
}

// Autenticar confere email, estado da conta e senha, nessa ordem, e deriva
// as flags de perfil para o token.
func (s *Service) Autenticar(email, senha string) (*ResultadoLogin, error) {
	u, err := s.Repo.BuscarPorEmail(s.DB, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return nil, err
	}

	if !u.Ativo() {
		return nil, apperrors.ContaDesativada()
	}

	if !utils.VerificarSenha(u.Senha, senha) {
		return nil, apperrors.CredenciaisInvalidas()
	}

	isPCD, err := s.Repo.TemPCD(s.DB, u.ID)
	if err != nil {
		return nil, err
	}
	isTerceiro, err := s.Repo.TemTerceiro(s.DB, u.ID)
	if err != nil {
		return nil, err
	}

	return &ResultadoLogin{Usuario: u, IsPCD: isPCD, IsTerceiro: isTerceiro}, nil
}

// DadosToken recarrega usuário e flags de perfil para reemissão de tokens.
func (s *Service) DadosToken(id uuid.UUID) (*ResultadoLogin, error) {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return nil, err
	}
	if !u.Ativo() {
		return nil, apperrors.ContaDesativada()
	}

	isPCD, err := s.Repo.TemPCD(s.DB, u.ID)
	if err != nil {
		return nil, err
	}
	isTerceiro, err := s.Repo.TemTerceiro(s.DB, u.ID)
	if err != nil {
		return nil, err
	}
	return &ResultadoLogin{Usuario: u, IsPCD: isPCD, IsTerceiro: isTerceiro}, nil
}

// BuscarPorID retorna o usuário e, se houver, o perfil PCD vinculado.
func (s *Service) BuscarPorID(id uuid.UUID) (*Usuario, *pcd.PCD, error) {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return nil, nil, err
	}

	perfil, err := s.PCDRepo.BuscarPorUsuario(s.DB, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		perfil = nil
	}
	return u, perfil, nil
}

// Atualizar altera apenas nome e bio; contas desativadas não aceitam escrita.
func (s *Service) Atualizar(id uuid.UUID, req AtualizarRequest) (*Usuario, error) {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return nil, err
	}
	if !u.Ativo() {
		return nil, apperrors.ContaDesativada()
	}

	// Toda a validação antes de qualquer escrita: com erro, nada muda
	var c validation.Coletor
	var nome string
	if req.Nome != nil {
		nome = strings.TrimSpace(*req.Nome)
		if len([]rune(nome)) < 2 {
			c.Adicionar("nome", "Nome deve ter pelo menos 2 caracteres")
		}
	}
	if req.Bio != nil && len([]rune(*req.Bio)) > 500 {
		c.Adicionar("bio", "Bio deve ter no máximo 500 caracteres")
	}
	if err := c.Erro(); err != nil {
		return nil, err
	}

	if req.Nome != nil {
		u.Nome = nome
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}

	if err := s.Repo.Salvar(s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Desativar aplica o soft delete: marca deleted_at e preserva a linha.
func (s *Service) Desativar(id uuid.UUID) error {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return err
	}
	if !u.Ativo() {
		return apperrors.ContaDesativada()
	}

	agora := time.Now()
	u.DeletedAt = &agora
	return s.Repo.Salvar(s.DB, u)
}

// AlterarSenha troca a senha após conferir a atual.
func (s *Service) AlterarSenha(id uuid.UUID, senhaAtual, novaSenha string) error {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NaoEncontrado("Usuário não encontrado")
		}
		return err
	}
	if !u.Ativo() {
		return apperrors.ContaDesativada()
	}
	if !utils.VerificarSenha(u.Senha, senhaAtual) {
		return apperrors.AutenticacaoNecessaria()
	}
	if len(novaSenha) < 8 {
		return apperrors.ValidacaoMsg("Nova senha deve ter no mínimo 8 caracteres")
	}

	hash, err := utils.HashSenha(novaSenha)
	if err != nil {
		return err
	}
	u.Senha = hash
	return s.Repo.Salvar(s.DB, u)
}

// ListarAtivos lista os usuários não desativados, mais recentes primeiro.
func (s *Service) ListarAtivos(limite int) ([]Usuario, error) {
	if limite <= 0 {
		limite = 50
	}
	return s.Repo.ListarAtivos(s.DB, limite)
}
