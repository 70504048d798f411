package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type AreaRepository interface {
	GetAll(ctx context.Context) ([]model.Area, error)
	GetByID(ctx context.Context, id uint) (*model.Area, error)
	Crear(ctx context.Context, area *model.Area) error
	Actualizar(ctx context.Context, area *model.Area) error
	Eliminar(ctx context.Context, id uint) error
}

type areaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db}
}

func (r *areaRepository) GetAll(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	err := r.db.WithContext(ctx).Order("nombre_area asc").Find(&areas).Error
	return areas, err
}

func (r *areaRepository) GetByID(ctx context.Context, id uint) (*model.Area, error) {
	var area model.Area
	err := r.db.WithContext(ctx).First(&area, id).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) Crear(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *areaRepository) Actualizar(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Save(area).Error
}

func (r *areaRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Area{}, id).Error
}
