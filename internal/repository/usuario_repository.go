package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Crear(ctx context.Context, usuario *model.Usuario) error
	BuscarPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error)
	Actualizar(ctx context.Context, usuario *model.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db}
}

func (r *usuarioRepository) Crear(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) BuscarPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).First(&usuario, id).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Actualizar(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}
