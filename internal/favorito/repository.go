package favorito

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, f *Favorito) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Favorito, error)
	BuscarPorUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (*Favorito, error)
	ExisteParaUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (bool, error)
	ListarTodos(db *gorm.DB) ([]Favorito, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) ([]Favorito, error)
	Deletar(db *gorm.DB, id uuid.UUID) error
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
	LocalExiste(db *gorm.DB, localID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Favorito) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Favorito, error) {
	var f Favorito
	if err := db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) BuscarPorUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (*Favorito, error) {
	var f Favorito
	err := db.First(&f, "usuario_id = ? AND local_id = ?", usuarioID, localID).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) ExisteParaUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (bool, error) {
	var total int64
	err := db.Model(&Favorito{}).
		Where("usuario_id = ? AND local_id = ?", usuarioID, localID).
		Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Favorito, error) {
	var favoritos []Favorito
	err := db.Order("created_at DESC").Find(&favoritos).Error
	return favoritos, err
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) ([]Favorito, error) {
	var favoritos []Favorito
	err := db.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&favoritos).Error
	return favoritos, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uuid.UUID) error {
	resultado := db.Delete(&Favorito{}, "id = ?", id)
	if resultado.Error != nil {
		return resultado.Error
	}
	if resultado.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("usuarios").Where("id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) LocalExiste(db *gorm.DB, localID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("locais").Where("id = ?", localID).Count(&total).Error
	return total > 0, err
}
