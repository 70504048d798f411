package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type DiaInhabilRepository interface {
	GetAll(ctx context.Context) ([]model.DiaInhabil, error)
	Crear(ctx context.Context, dia *model.DiaInhabil) error
	Eliminar(ctx context.Context, id uint) error
	EsInhabil(ctx context.Context, fecha string) (bool, error)
	ListarEnRango(ctx context.Context, desde, hasta string) ([]model.DiaInhabil, error)
}

type diaInhabilRepository struct {
	db *gorm.DB
}

func NewDiaInhabilRepository(db *gorm.DB) DiaInhabilRepository {
	return &diaInhabilRepository{db}
}

func (r *diaInhabilRepository) GetAll(ctx context.Context) ([]model.DiaInhabil, error) {
	var dias []model.DiaInhabil
	err := r.db.WithContext(ctx).Order("fecha asc").Find(&dias).Error
	return dias, err
}

func (r *diaInhabilRepository) Crear(ctx context.Context, dia *model.DiaInhabil) error {
	return r.db.WithContext(ctx).Create(dia).Error
}

func (r *diaInhabilRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DiaInhabil{}, id).Error
}

func (r *diaInhabilRepository) EsInhabil(ctx context.Context, fecha string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DiaInhabil{}).
		Where("fecha = ?", fecha).
		Count(&count).Error
	return count > 0, err
}

func (r *diaInhabilRepository) ListarEnRango(ctx context.Context, desde, hasta string) ([]model.DiaInhabil, error) {
	var dias []model.DiaInhabil
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", desde, hasta).
		Order("fecha asc").
		Find(&dias).Error
	return dias, err
}
