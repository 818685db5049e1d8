package rota

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/geo"
)

type Rota struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID           uuid.UUID `json:"usuario_id" gorm:"type:uuid;index"`
	OrigemLat           float64   `json:"origem_lat"`
	OrigemLng           float64   `json:"origem_lng"`
	DestinoLat          float64   `json:"destino_lat"`
	DestinoLng          float64   `json:"destino_lng"`
	Polyline            geo.Linha `json:"-" gorm:"type:geometry(LineString,4326)"`
	ScoreAcessibilidade float64   `json:"score_acessibilidade" gorm:"default:0"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Rota) TableName() string { return "rotas" }

func (r *Rota) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave reconstrói a linha origem->destino a partir das coordenadas.
func (r *Rota) BeforeSave(tx *gorm.DB) error {
	r.Polyline = geo.NovaLinha(r.OrigemLat, r.OrigemLng, r.DestinoLat, r.DestinoLng)
	return nil
}

// DistanciaEstimadaKm estima a distância da rota em quilômetros.
func (r *Rota) DistanciaEstimadaKm() float64 {
	return geo.DistanciaKm(r.OrigemLat, r.OrigemLng, r.DestinoLat, r.DestinoLng)
}
