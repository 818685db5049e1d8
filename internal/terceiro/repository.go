package terceiro

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, t *Terceiro) error
	Salvar(db *gorm.DB, t *Terceiro) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Terceiro, error)
	ListarTodos(db *gorm.DB) ([]Terceiro, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) ([]Terceiro, error)
	ExisteParaUsuarioERelacao(db *gorm.DB, usuarioID uuid.UUID, relacao string) (bool, error)
	Deletar(db *gorm.DB, id uuid.UUID) error
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *Terceiro) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Terceiro) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Terceiro, error) {
	var t Terceiro
	if err := db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Terceiro, error) {
	var terceiros []Terceiro
	err := db.Order("relacao").Find(&terceiros).Error
	return terceiros, err
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID) ([]Terceiro, error) {
	var terceiros []Terceiro
	err := db.Where("usuario_id = ?", usuarioID).Order("relacao").Find(&terceiros).Error
	return terceiros, err
}

func (r *repositoryImpl) ExisteParaUsuarioERelacao(db *gorm.DB, usuarioID uuid.UUID, relacao string) (bool, error) {
	var total int64
	err := db.Model(&Terceiro{}).
		Where("usuario_id = ? AND relacao = ?", usuarioID, relacao).
		Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uuid.UUID) error {
	resultado := db.Delete(&Terceiro{}, "id = ?", id)
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
