package local

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Raio, em graus, abaixo do qual dois locais contam como o mesmo ponto.
const RaioDuplicataGraus = 0.01

type Repository interface {
	Criar(db *gorm.DB, l *Local) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Local, error)
	ListarTodos(db *gorm.DB) ([]Local, error)
	ExisteProximo(db *gorm.DB, lat, lng, raioGraus float64) (bool, error)
	BuscarProximos(db *gorm.DB, lat, lng, raioGraus float64) ([]Local, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, l *Local) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Local, error) {
	var l Local
	if err := db.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Local, error) {
	var locais []Local
	err := db.Order("nome").Find(&locais).Error
	return locais, err
}

// ExisteProximo delega a comparação de distância ao PostGIS.
func (r *repositoryImpl) ExisteProximo(db *gorm.DB, lat, lng, raioGraus float64) (bool, error) {
	var total int64
	err := db.Model(&Local{}).
		Where("ST_DWithin(point, ST_SetSRID(ST_MakePoint(?, ?), 4326), ?)", lng, lat, raioGraus).
		Count(&total).Error
	return total > 0, err
}

// BuscarProximos retorna os locais dentro do raio, mais próximos primeiro.
func (r *repositoryImpl) BuscarProximos(db *gorm.DB, lat, lng, raioGraus float64) ([]Local, error) {
	var locais []Local
	err := db.
		Where("ST_DWithin(point, ST_SetSRID(ST_MakePoint(?, ?), 4326), ?)", lng, lat, raioGraus).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:  "ST_Distance(point, ST_SetSRID(ST_MakePoint(?, ?), 4326))",
				Vars: []interface{}{lng, lat},
			},
		}).
		Find(&locais).Error
	return locais, err
}
