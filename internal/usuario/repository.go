package usuario

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, u *Usuario) error
	Salvar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	EmailExiste(db *gorm.DB, email string) (bool, error)
	ListarAtivos(db *gorm.DB, limite int) ([]Usuario, error)
	TemPCD(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
	TemTerceiro(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) EmailExiste(db *gorm.DB, email string) (bool, error) {
	var total int64
	err := db.Model(&Usuario{}).Where("email = ?", email).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB, limite int) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(limite).
		Find(&usuarios).Error
	return usuarios, err
}

// As flags de perfil consultam as tabelas filhas direto, sem carregar o
// pacote correspondente.
func (r *repositoryImpl) TemPCD(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("pcds").Where("usuario_id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) TemTerceiro(db *gorm.DB, usuarioID uuid.UUID) (bool, error) {
	var total int64
	err := db.Table("terceiros").Where("usuario_id = ?", usuarioID).Count(&total).Error
	return total > 0, err
}
