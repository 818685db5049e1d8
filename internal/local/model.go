package local

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetomogo/api-mogo/internal/geo"
)

var TiposLocal = []string{
	"saude", "educacao", "transporte", "comercio", "lazer",
	"servicos", "religioso", "cultural", "outro",
}

type Local struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nome      string    `json:"nome" gorm:"size:200"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Point     geo.Ponto `json:"-" gorm:"type:geometry(Point,4326)"`
	TipoLocal string    `json:"tipo_local" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
}

func (Local) TableName() string { return "locais" }

func (l *Local) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BeforeSave recalcula o ponto a partir de latitude/longitude a cada
// gravação, mantendo a geometria coerente com as colunas planas.
func (l *Local) BeforeSave(tx *gorm.DB) error {
	l.Point = geo.NovoPonto(l.Latitude, l.Longitude)
	return nil
}
