package local

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

// Listar retorna todos os locais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	locais, err := h.Service.ListarTodos()
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, locais)
}

// Criar cadastra um novo local
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	l, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, l)
}

// BuscarPorID retorna um local pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	l, err := h.Service.BuscarPorID(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, l)
}

// BuscarProximos atende GET /local/proximos/?lat=&lng=&raio_km=
func (h *Handler) BuscarProximos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Parâmetros 'lat' e 'lng' são obrigatórios."))
		return
	}
	raioKm, _ := strconv.ParseFloat(q.Get("raio_km"), 64)

	locais, err := h.Service.BuscarProximos(lat, lng, raioKm)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, locais)
}
