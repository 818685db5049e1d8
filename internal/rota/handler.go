package rota

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

// rotaDTO acrescenta a distância estimada na resposta
type rotaDTO struct {
	Rota
	DistanciaEstimadaKm float64 `json:"distancia_estimada_km"`
}

func paraDTO(r Rota) rotaDTO {
	return rotaDTO{Rota: r, DistanciaEstimadaKm: r.DistanciaEstimadaKm()}
}

// Criar cadastra uma nova rota
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("Payload inválido."))
		return
	}
	rota, err := h.Service.Criar(req)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusCreated, paraDTO(*rota))
}

// BuscarPorID retorna uma rota pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	rota, err := h.Service.BuscarPorID(id)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	apperrors.ResponderJSON(w, http.StatusOK, paraDTO(*rota))
}

// ListarPorUsuario atende GET /usuario/{id}/rotas/
func (h *Handler) ListarPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperrors.Responder(w, apperrors.ValidacaoMsg("ID inválido."))
		return
	}
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))

	rotas, err := h.Service.ListarPorUsuario(usuarioID, limite)
	if err != nil {
		apperrors.Responder(w, err)
		return
	}
	dtos := make([]rotaDTO, 0, len(rotas))
	for _, rota := range rotas {
		dtos = append(dtos, paraDTO(rota))
	}
	apperrors.ResponderJSON(w, http.StatusOK, dtos)
}

// Deletar remove uma rota
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
