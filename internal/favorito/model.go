package favorito

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorito marca um local salvo pelo usuário, com apelido opcional. Cada
// par (usuário, local) admite um único favorito.
type Favorito struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UsuarioID uuid.UUID `json:"usuario_id" gorm:"type:uuid;uniqueIndex:idx_favorito_usuario_local"`
	LocalID   uuid.UUID `json:"local_id" gorm:"type:uuid;uniqueIndex:idx_favorito_usuario_local"`
	Apelido   string    `json:"apelido,omitempty" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorito) TableName() string { return "favoritos" }

func (f *Favorito) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
