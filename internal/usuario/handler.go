package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
	"github.com/projetomogo/api-mogo/internal/auth"
	"github.com/projetomogo/api-mogo/internal/pcd"
)

// Handler encapsula o service e o gerador de tokens
type Handler struct {
	Service *Service
	Tokens  *auth.GeradorTokens
}

func NewHandler(db *gorm.DB, tokens *auth.GeradorTokens) *Handler {
	return &Handler{
		Service: NewService(db, NewRepository(), pcd.NewRepository()),
		Tokens:  tokens,
	}
}

// Registrar cadastra um novo usuário (rota pública)
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req RegistroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	u, err := h.Service.Registrar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, u)
}

// RegistrarComPCD cadastra usuário e perfil PCD em uma chamada
func (h *Handler) RegistrarComPCD(w http.ResponseWriter, r *http.Request) {
	var req RegistroPCDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	u, perfil, err := h.Service.RegistrarComPCD(req.Usuario, req.PCD)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, RegistroPCDResponse{Usuario: u, PCD: perfil})
}

// Login autentica e devolve o par de tokens com as flags de perfil
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	if err := req.Validar(); err != nil {
		apperrors.Responder(w, err)
		return
	}

	resultado, err := h.Service.Autenticar(req.Email, req.Password)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}

	par, err := h.Tokens.GerarPar(auth.DadosUsuario{
		ID:         resultado.Usuario.ID.String(),
		Email:      resultado.Usuario.Email,
		Nome:       resultado.Usuario.Nome,
		IsPCD:      resultado.IsPCD,
		IsTerceiro: resultado.IsTerceiro,
	})
	if err != nil {
		apperrors.Responder(w, err)
		return
	}

	apperrors.ResponderJSON(w, http.StatusOK, LoginResponse{
		Usuario: UsuarioTokenDTO{
			ID:         resultado.Usuario.ID.String(),
			Nome:       resultado.Usuario.Nome,
			Email:      resultado.Usuario.Email,
			IsPCD:      resultado.IsPCD,
			IsTerceiro: resultado.IsTerceiro,
		},
		Access:  par.Access,
		Refresh: par.Refresh,
	})
}

// Refresh emite um novo par de tokens a partir de um refresh token válido
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}

	claims, err := h.Tokens.ValidarRefresh(req.Refresh)
	if err != nil {
		apperrors.Responder(w, apperrors.AutenticacaoNecessaria())
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		apperrors.Responder(w, apperrors.AutenticacaoNecessaria())
		return
	}

	// Reconsulta o usuário: conta desativada após a emissão não renova
	resultado, err := h.Service.DadosToken(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}

	par, err := h.Tokens.GerarPar(auth.DadosUsuario{
		ID:         resultado.Usuario.ID.String(),
		Email:      resultado.Usuario.Email,
		Nome:       resultado.Usuario.Nome,
		IsPCD:      resultado.IsPCD,
		IsTerceiro: resultado.IsTerceiro,
	})
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, par)
}

// Listar retorna os usuários ativos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Service.ListarAtivos(50)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, usuarios)
}

// BuscarPorID retorna um usuário com o perfil PCD embutido
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	u, perfil, err := h.Service.BuscarPorID(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, PerfilDTO{Usuario: *u, PCD: perfil})
}

// Atualizar altera nome e bio
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	var req AtualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	u, err := h.Service.Atualizar(id, req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, u)
}

// Desativar aplica o soft delete na conta
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	if err := h.Service.Desativar(id); err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, map[string]string{"message": "Usuário desativado com sucesso."})
}

// AlterarSenha troca a senha do usuário
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	var req AlterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	if req.SenhaAtual == "" || req.NovaSenha == "" {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Campos 'senha_atual' e 'nova_senha' são obrigatórios."))
		return
	}
	if err := h.Service.AlterarSenha(id, req.SenhaAtual, req.NovaSenha); err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, map[string]string{"message": "Senha alterada com sucesso."})
}
