package usuario

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usuario struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Nome       string     `json:"nome" gorm:"size:100;index"`
	Email      string     `json:"email" gorm:"size:254;uniqueIndex"`
	Senha      string     `json:"-" gorm:"size:128"`
	FotoPerfil string     `json:"foto_perfil,omitempty"`
	Bio        string     `json:"bio,omitempty" gorm:"size:500"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Ativo indica que a conta não passou por soft delete.
func (u *Usuario) Ativo() bool {
	return u.DeletedAt == nil
}
