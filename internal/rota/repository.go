package rota

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, r *Rota) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Rota, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Rota, error)
	Deletar(db *gorm.DB, id uuid.UUID) error
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (repo *repositoryImpl) Criar(db *gorm.DB, r *Rota) error {
	return db.Create(r).Error
}

func (repo *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Rota, error) {
	var r Rota
	if err := db.First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Rota, error) {
	var rotas []Rota
	err := db.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Limit(limite).
		Find(&rotas).Error
	return rotas, err
}

func (repo *repositoryImpl) Deletar(db *gorm.DB, id uuid.UUID) error {
	resultado := db.Delete(&Rota{}, "id = ?", id)
	if resultado.Error != nil {
		return resultado.Error
	}
	if resultado.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *repositoryImpl) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("usuarios").Where("id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}
