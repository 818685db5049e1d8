package avaliacao

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

// Listar atende GET /avaliacao/ com filtros opcionais usuario_id/local_id
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	usuarioParam := q.Get("usuario_id")
	localParam := q.Get("local_id")
	limite, _ := strconv.Atoi(q.Get("limite"))

	switch {
	case usuarioParam != "" && localParam != "":
		usuarioID, err1 := uuid.Parse(usuarioParam)
		localID, err2 := uuid.Parse(localParam)
		if err1 != nil || err2 != nil {
			apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetros usuario_id e local_id inválidos."))
			return
		}
		a, err := h.Service.Buscar(usuarioID, localID)
		if err != nil {
			apperrors.Responder(w, err)
			return
		}
		apperrors.ResponderJSON(w, http.StatusOK, a)

	case usuarioParam != "":
		usuarioID, err := uuid.Parse(usuarioParam)
		if err != nil {
			apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetro usuario_id inválido."))
			return
		}
		avaliacoes, err := h.Service.ListarPorUsuario(usuarioID, limite)
		if err != nil {
			apperrors.Responder(w, err)
			return
		}
		apperrors.ResponderJSON(w, http.StatusOK, avaliacoes)

	case localParam != "":
		localID, err := uuid.Parse(localParam)
		if err != nil {
			apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetro local_id inválido."))
			return
		}
		avaliacoes, err := h.Service.ListarPorLocal(localID, limite)
		if err != nil {
			apperrors.Responder(w, err)
			return
		}
		apperrors.ResponderJSON(w, http.StatusOK, avaliacoes)

	default:
		avaliacoes, err := h.Service.ListarTodas()
		if err != nil {
			apperrors.Responder(w, err)
			return
		}
		apperrors.ResponderJSON(w, http.StatusOK, avaliacoes)
	}
}

// Criar cadastra uma avaliação
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	a, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, a)
}

// BuscarPorID retorna uma avaliação pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	a, err := h.Service.BuscarPorID(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, a)
}

// ListarPorUsuario atende GET /usuario/{id}/avaliacoes/
func (h *Handler) ListarPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))
	avaliacoes, err := h.Service.ListarPorUsuario(usuarioID, limite)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, avaliacoes)
}

// ListarPorLocal atende GET /local/{id}/avaliacoes/
func (h *Handler) ListarPorLocal(w http.ResponseWriter, r *http.Request) {
	localID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))
	avaliacoes, err := h.Service.ListarPorLocal(localID, limite)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, avaliacoes)
}

// MediaPorLocal atende GET /local/{id}/avaliacoes/media/
func (h *Handler) MediaPorLocal(w http.ResponseWriter, r *http.Request) {
	localID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	media, err := h.Service.MediaPorLocal(localID)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, media)
}

// Deletar remove uma avaliação
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
