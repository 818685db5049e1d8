package historico

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoricoBusca registra um evento de busca do usuário. Linhas nunca são
// alteradas depois de criadas.
type HistoricoBusca struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID    uuid.UUID `json:"usuario_id" gorm:"type:uuid;index"`
	OrigemTexto  string    `json:"origem_texto" gorm:"size:300"`
	DestinoTexto string    `json:"destino_texto" gorm:"size:300"`
	OrigemLat    *float64  `json:"origem_lat,omitempty"`
	OrigemLng    *float64  `json:"origem_lng,omitempty"`
	DestinoLat   *float64  `json:"destino_lat,omitempty"`
	DestinoLng   *float64  `json:"destino_lng,omitempty"`
	DataHora     time.Time `json:"data_hora" gorm:"autoCreateTime"`
}

func (HistoricoBusca) TableName() string { return "historico_buscas" }

func (h *HistoricoBusca) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
