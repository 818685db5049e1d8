package historico

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, h *HistoricoBusca) error
	ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]HistoricoBusca, error)
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, h *HistoricoBusca) error {
	return db.Create(h).Error
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]HistoricoBusca, error) {
	var historico []HistoricoBusca
	err := db.Where("usuario_id = ?", usuarioID).
		Order("data_hora DESC").
		Limit(limite).
		Find(&historico).Error
	return historico, err
}

func (r *repositoryImpl) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("usuarios").Where("id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}
