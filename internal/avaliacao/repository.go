package avaliacao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media agrega as avaliações de um local.
type Media struct {
	MediaNota       float64 `json:"media_nota"`
	TotalAvaliacoes int64   `json:"total_avaliacoes"`
}

type Repository interface {
	Criar(db *gorm.DB, a *Avaliacao) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Avaliacao, error)
	BuscarPorUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (*Avaliacao, error)
	ExisteParaUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (bool, error)
	ListarTodas(db *gorm.DB) ([]Avaliacao, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Avaliacao, error)
	ListarPorLocal(db *gorm.DB, localID uuid.UUID, limite int) ([]Avaliacao, error)
	MediaPorLocal(db *gorm.DB, localID uuid.UUID) (Media, error)
	Deletar(db *gorm.DB, id uuid.UUID) error
	UsuarioExiste(db *gorm.DB, usuarioID uuid.UUID) (bool, error)
	LocalExiste(db *gorm.DB, localID uuid.UUID) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Avaliacao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Avaliacao, error) {
	var a Avaliacao
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) BuscarPorUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (*Avaliacao, error) {
	var a Avaliacao
	err := db.First(&a, "usuario_id = ? AND local_id = ?", usuarioID, localID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) ExisteParaUsuarioELocal(db *gorm.DB, usuarioID, localID uuid.UUID) (bool, error) {
	var total int64
	err := db.Model(&Avaliacao{}).
		Where("usuario_id = ? AND local_id = ?", usuarioID, localID).
		Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Avaliacao, error) {
	var avaliacoes []Avaliacao
	err := db.Order("created_at DESC").Find(&avaliacoes).Error
	return avaliacoes, err
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uuid.UUID, limite int) ([]Avaliacao, error) {
	var avaliacoes []Avaliacao
	err := db.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Limit(limite).
		Find(&avaliacoes).Error
	return avaliacoes, err
}

func (r *repositoryImpl) ListarPorLocal(db *gorm.DB, localID uuid.UUID, limite int) ([]Avaliacao, error) {
	var avaliacoes []Avaliacao
	err := db.Where("local_id = ?", localID).
		Order("created_at DESC").
		Limit(limite).
		Find(&avaliacoes).Error
	return avaliacoes, err
}

func (r *repositoryImpl) MediaPorLocal(db *gorm.DB, localID uuid.UUID) (Media, error) {
	var m Media
	err := db.Model(&Avaliacao{}).
		Select("COALESCE(ROUND(AVG(nota)::numeric, 1), 0) AS media_nota, COUNT(id) AS total_avaliacoes").
		Where("local_id = ?", localID).
		Scan(&m).Error
	return m, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uuid.UUID) error {
	resultado := db.Delete(&Avaliacao{}, "id = ?", id)
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
