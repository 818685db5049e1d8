package avaliacao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Avaliacao é a nota de um usuário para um local; cada par (usuário, local)
// admite uma única avaliação.
type Avaliacao struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID  uuid.UUID `json:"usuario_id" gorm:"type:uuid;uniqueIndex:idx_avaliacao_usuario_local"`
	LocalID    uuid.UUID `json:"local_id" gorm:"type:uuid;uniqueIndex:idx_avaliacao_usuario_local"`
	Nota       int       `json:"nota" gorm:"check:nota >= 1 AND nota <= 5"`
	Comentario string    `json:"comentario,omitempty" gorm:"size:1000"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Avaliacao) TableName() string { return "avaliacoes" }

func (a *Avaliacao) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
