package pcd

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, p *PCD) error
	Salvar(db *gorm.DB, p *PCD) error
	BuscarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) (*PCD, error)
	ExisteParaUsuario(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
	ListarTodos(db *gorm.DB) ([]PCD, error)
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *PCD) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *PCD) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) (*PCD, error) {
	var p PCD
	if err := db.First(&p, "usuario_id = ?", usuarioID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ExisteParaUsuario(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Model(&PCD{}).Where("usuario_id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]PCD, error) {
	var pcds []PCD
	err := db.Order("tipo_deficiencia").Find(&pcds).Error
	return pcds, err
}

func (r *repositoryImpl) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("usuarios").Where("id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}
