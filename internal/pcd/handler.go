package pcd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db, NewRepository())}
}

// Listar retorna todos os perfis PCD
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pcds, err := h.Service.ListarTodos()
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, pcds)
}

// Criar cadastra o perfil PCD de um usuário existente
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	p, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, p)
}

// BuscarPorUsuario retorna o perfil PCD pelo ID do usuário dono
func (h *Handler) BuscarPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["usuarioId"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	p, err := h.Service.BuscarPorUsuario(usuarioID)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, p)
}

// Atualizar altera o perfil PCD de um usuário
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["usuarioId"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	var req AtualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	p, err := h.Service.Atualizar(usuarioID, req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, p)
}
