package pcd

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enums do perfil PCD
var (
	TiposDeficiencia       = []string{"fisica", "visual", "auditiva", "intelectual", "multipla"}
	FormasLocomocao        = []string{"andar", "cadeira_rodas", "muletas", "andador", "outro"}
	RecursosAcessibilidade = []string{"rampas", "pisos_tateis", "elevadores", "outros"}
)

type PCD struct {
	ID                     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID              uuid.UUID `json:"usuario_id" gorm:"type:uuid;uniqueIndex"`
	TipoDeficiencia        string    `json:"tipo_deficiencia" gorm:"size:20;index"`
	FormaLocomocao         string    `json:"forma_locomocao" gorm:"size:50;default:andar"`
	RecursosAcessibilidade []string  `json:"recursos_acessibilidade" gorm:"serializer:json"`
	Detalhes               string    `json:"detalhes,omitempty" gorm:"size:1000"`
}

func (PCD) TableName() string { return "pcds" }

func (p *PCD) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
