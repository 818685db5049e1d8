package terceiro

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	TiposRelacao              = []string{"familiar", "cuidador", "amigo", "voluntario", "outro"}
	TiposDeficienciaAssistida = []string{"fisica", "visual", "auditiva", "intelectual", "multipla"}
)

// Terceiro é o perfil de cuidador/responsável vinculado a um usuário. Um
// usuário pode ter no máximo um perfil por tipo de relação.
type Terceiro struct {
	ID                          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID                   uuid.UUID `json:"usuario_id" gorm:"type:uuid;uniqueIndex:idx_terceiro_usuario_relacao"`
	Relacao                     string    `json:"relacao" gorm:"size:20;uniqueIndex:idx_terceiro_usuario_relacao"`
	PCDAssistidaTipoDeficiencia string    `json:"pcd_assistida_tipo_deficiencia" gorm:"size:20"`
	Descricao                   string    `json:"descricao,omitempty" gorm:"size:500"`
}

func (Terceiro) TableName() string { return "terceiros" }

func (t *Terceiro) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
