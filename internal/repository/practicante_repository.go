package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type PracticanteRepository interface {
	Crear(ctx context.Context, practicante *model.Practicante) error
	Actualizar(ctx context.Context, practicante *model.Practicante) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Practicante, error)
	BuscarPorMatricula(ctx context.Context, matricula string) (*model.Practicante, error)
	ListarPorArea(ctx context.Context, areaID uint) ([]model.Practicante, error)
	ListarActivos(ctx context.Context) ([]model.Practicante, error)
	// FechaEntrada regresa la fecha de inicio de la estancia (YYYY-MM-DD).
	FechaEntrada(ctx context.Context, id uint) (string, error)
	ContarActivosPorArea(ctx context.Context, areaID uint) (int64, error)
}

type practicanteRepository struct {
	db *gorm.DB
}

func NewPracticanteRepository(db *gorm.DB) PracticanteRepository {
	return &practicanteRepository{db}
}

func (r *practicanteRepository) Crear(ctx context.Context, practicante *model.Practicante) error {
	return r.db.WithContext(ctx).Create(practicante).Error
}

func (r *practicanteRepository) Actualizar(ctx context.Context, practicante *model.Practicante) error {
	return r.db.WithContext(ctx).Save(practicante).Error
}

func (r *practicanteRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Practicante, error) {
	var practicante model.Practicante
	err := r.db.WithContext(ctx).Preload("Area").First(&practicante, id).Error
	if err != nil {
		return nil, err
	}
	return &practicante, nil
}

func (r *practicanteRepository) BuscarPorMatricula(ctx context.Context, matricula string) (*model.Practicante, error) {
	var practicante model.Practicante
	err := r.db.WithContext(ctx).Where("matricula = ?", matricula).First(&practicante).Error
	if err != nil {
		return nil, err
	}
	return &practicante, nil
}

func (r *practicanteRepository) ListarPorArea(ctx context.Context, areaID uint) ([]model.Practicante, error) {
	var lista []model.Practicante
	err := r.db.WithContext(ctx).Where("area_id = ?", areaID).Order("nombre asc").Find(&lista).Error
	return lista, err
}

func (r *practicanteRepository) ListarActivos(ctx context.Context) ([]model.Practicante, error) {
	var lista []model.Practicante
	err := r.db.WithContext(ctx).Preload("Area").Where("is_active = ?", true).Order("nombre asc").Find(&lista).Error
	return lista, err
}

func (r *practicanteRepository) FechaEntrada(ctx context.Context, id uint) (string, error) {
	var practicante model.Practicante
	err := r.db.WithContext(ctx).Select("fecha_entrada").First(&practicante, id).Error
	if err != nil {
		return "", err
	}
	return practicante.FechaEntrada, nil
}

func (r *practicanteRepository) ContarActivosPorArea(ctx context.Context, areaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Practicante{}).
		Where("area_id = ? AND is_active = ?", areaID, true).
		Count(&count).Error
	return count, err
}
