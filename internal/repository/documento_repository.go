package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type DocumentoRepository interface {
	Crear(ctx context.Context, documento *model.Documento) error
	ListarPorPracticante(ctx context.Context, practicanteID uint) ([]model.Documento, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Documento, error)
	Eliminar(ctx context.Context, id uint) error
}

type documentoRepository struct {
	db *gorm.DB
}

func NewDocumentoRepository(db *gorm.DB) DocumentoRepository {
	return &documentoRepository{db}
}

func (r *documentoRepository) Crear(ctx context.Context, documento *model.Documento) error {
	return r.db.WithContext(ctx).Create(documento).Error
}

func (r *documentoRepository) ListarPorPracticante(ctx context.Context, practicanteID uint) ([]model.Documento, error) {
	var lista []model.Documento
	err := r.db.WithContext(ctx).
		Where("practicante_id = ?", practicanteID).
		Order("created_at desc").
		Find(&lista).Error
	return lista, err
}

func (r *documentoRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Documento, error) {
	var documento model.Documento
	err := r.db.WithContext(ctx).First(&documento, id).Error
	if err != nil {
		return nil, err
	}
	return &documento, nil
}

func (r *documentoRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Documento{}, id).Error
}
