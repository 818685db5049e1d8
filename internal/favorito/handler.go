package favorito

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

// Listar atende GET /favorito/ com filtro opcional usuario_id
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioParam := r.URL.Query().Get("usuario_id")
	if usuarioParam != "" {
		usuarioID, err := uuid.Parse(usuarioParam)
		if err != nil {
			apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetro usuario_id inválido."))
			return
		}
		favoritos, err := h.Service.ListarPorUsuario(usuarioID)
		if err != nil {
			apperrors.Responder(w, err)
			return
		}
		apperrors.ResponderJSON(w, http.StatusOK, favoritos)
		return
	}

	favoritos, err := h.Service.ListarTodos()
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, favoritos)
}

// Criar adiciona um local aos favoritos do usuário
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	f, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, f)
}

// Buscar atende GET /favorito/buscar/?usuario_id=...&local_id=...
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	usuarioID, err1 := uuid.Parse(q.Get("usuario_id"))
	localID, err2 := uuid.Parse(q.Get("local_id"))
	if err1 != nil || err2 != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetros usuario_id e local_id inválidos."))
		return
	}
	f, err := h.Service.Buscar(usuarioID, localID)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, f)
}

// BuscarPorID retorna um favorito pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	f, err := h.Service.BuscarPorID(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, f)
}

// ListarPorUsuario atende GET /usuario/{id}/favoritos/
func (h *Handler) ListarPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	favoritos, err := h.Service.ListarPorUsuario(usuarioID)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, favoritos)
}

// Deletar remove um favorito
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	if err := h.Service.Deletar(id); err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusNoContent, nil)
}
