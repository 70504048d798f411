package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type SolicitudRepository interface {
	Crear(ctx context.Context, solicitud *model.Solicitud) error
	Actualizar(ctx context.Context, solicitud *model.Solicitud) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Solicitud, error)
	ListarPorEstado(ctx context.Context, estado string) ([]model.Solicitud, error)
	ExistePendientePorMatricula(ctx context.Context, matricula string) (bool, error)
}

type solicitudRepository struct {
	db *gorm.DB
}

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository {
	return &solicitudRepository{db}
}

func (r *solicitudRepository) Crear(ctx context.Context, solicitud *model.Solicitud) error {
	return r.db.WithContext(ctx).Create(solicitud).Error
}

func (r *solicitudRepository) Actualizar(ctx context.Context, solicitud *model.Solicitud) error {
	return r.db.WithContext(ctx).Save(solicitud).Error
}

func (r *solicitudRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Solicitud, error) {
	var solicitud model.Solicitud
	err := r.db.WithContext(ctx).Preload("Area").First(&solicitud, id).Error
	if err != nil {
		return nil, err
	}
	return &solicitud, nil
}

func (r *solicitudRepository) ListarPorEstado(ctx context.Context, estado string) ([]model.Solicitud, error) {
	var lista []model.Solicitud
	err := r.db.WithContext(ctx).Preload("Area").
		Where("estado = ?", estado).
		Order("created_at asc").
		Find(&lista).Error
	return lista, err
}

func (r *solicitudRepository) ExistePendientePorMatricula(ctx context.Context, matricula string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("matricula = ? AND estado = ?", matricula, "PENDIENTE").
		Count(&count).Error
	return count > 0, err
}
