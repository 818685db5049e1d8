package historico

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// Criar registra um evento de busca
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	registro, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, registro)
}

// ListarPorUsuario atende GET /usuario/{id}/historico/
func (h *Handler) ListarPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))

	historico, err := h.Service.ListarPorUsuario(usuarioID, limite)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, historico)
}
