package repository

import (
	"context"

	"sipra-backend/internal/model"

	"gorm.io/gorm"
)

type AsistenciaRepository interface {
	Crear(ctx context.Context, asistencia *model.Asistencia) error
	Actualizar(ctx context.Context, asistencia *model.Asistencia) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Asistencia, error)
	// ExistePorTurno verifica si ya hay registro para (practicante, fecha, turno).
	ExistePorTurno(ctx context.Context, practicanteID uint, fecha string, turnoID uint) (bool, error)
	// BuscarAbierta regresa el registro del día sin hora de salida, sin
	// importar el turno. gorm.ErrRecordNotFound si no hay ninguno.
	BuscarAbierta(ctx context.Context, practicanteID uint, fecha string) (*model.Asistencia, error)
	// ObtenerDeFecha trae el registro del día con sus pausas precargadas.
	ObtenerDeFecha(ctx context.Context, practicanteID uint, fecha string) (*model.Asistencia, error)
	ListarPorAreaYFecha(ctx context.Context, areaID uint, fecha string) ([]model.Asistencia, error)
	ListarPorMes(ctx context.Context, practicanteID uint, mes string, anio string) ([]model.Asistencia, error)
	// ContarEntradasDeFecha cuenta practicantes distintos con entrada en la
	// fecha; dos turnos el mismo día cuentan una vez.
	ContarEntradasDeFecha(ctx context.Context, areaID uint, fecha string) (int64, error)

	CrearPausa(ctx context.Context, pausa *model.Pausa) error
	ActualizarPausa(ctx context.Context, pausa *model.Pausa) error
	ObtenerPausa(ctx context.Context, id uint) (*model.Pausa, error)
	TienePausaAbierta(ctx context.Context, asistenciaID uint) (bool, error)
	ContarPausasAbiertasDeFecha(ctx context.Context, areaID uint, fecha string) (int64, error)
}

type asistenciaRepository struct {
	db *gorm.DB
}

func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository {
	return &asistenciaRepository{db}
}

func (r *asistenciaRepository) Crear(ctx context.Context, asistencia *model.Asistencia) error {
	return r.db.WithContext(ctx).Create(asistencia).Error
}

func (r *asistenciaRepository) Actualizar(ctx context.Context, asistencia *model.Asistencia) error {
	return r.db.WithContext(ctx).Save(asistencia).Error
}

func (r *asistenciaRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Asistencia, error) {
	var asistencia model.Asistencia
	err := r.db.WithContext(ctx).First(&asistencia, id).Error
	if err != nil {
		return nil, err
	}
	return &asistencia, nil
}

func (r *asistenciaRepository) ExistePorTurno(ctx context.Context, practicanteID uint, fecha string, turnoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Asistencia{}).
		Where("practicante_id = ? AND fecha = ? AND turno_id = ?", practicanteID, fecha, turnoID).
		Count(&count).Error
	return count > 0, err
}

func (r *asistenciaRepository) BuscarAbierta(ctx context.Context, practicanteID uint, fecha string) (*model.Asistencia, error) {
	var asistencia model.Asistencia
	err := r.db.WithContext(ctx).
		Where("practicante_id = ? AND fecha = ? AND hora_salida IS NULL", practicanteID, fecha).
		Order("created_at asc").
		First(&asistencia).Error
	if err != nil {
		return nil, err
	}
	return &asistencia, nil
}

func (r *asistenciaRepository) ObtenerDeFecha(ctx context.Context, practicanteID uint, fecha string) (*model.Asistencia, error) {
	var asistencia model.Asistencia
	err := r.db.WithContext(ctx).Preload("Pausas").
		Where("practicante_id = ? AND fecha = ?", practicanteID, fecha).
		First(&asistencia).Error
	if err != nil {
		return nil, err
	}
	return &asistencia, nil
}

func (r *asistenciaRepository) ListarPorAreaYFecha(ctx context.Context, areaID uint, fecha string) ([]model.Asistencia, error) {
	var lista []model.Asistencia
	err := r.db.WithContext(ctx).Preload("Pausas").
		Joins("JOIN practicantes ON practicantes.id = asistencias.practicante_id").
		Where("asistencias.fecha = ? AND practicantes.area_id = ?", fecha, areaID).
		Find(&lista).Error
	return lista, err
}

func (r *asistenciaRepository) ListarPorMes(ctx context.Context, practicanteID uint, mes string, anio string) ([]model.Asistencia, error) {
	var lista []model.Asistencia
	err := r.db.WithContext(ctx).Preload("Pausas").
		Where("practicante_id = ? AND fecha LIKE ?", practicanteID, anio+"-"+mes+"-%").
		Order("fecha asc").
		Find(&lista).Error
	return lista, err
}

func (r *asistenciaRepository) ContarEntradasDeFecha(ctx context.Context, areaID uint, fecha string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Asistencia{}).
		Distinct("asistencias.practicante_id").
		Joins("JOIN practicantes ON practicantes.id = asistencias.practicante_id").
		Where("asistencias.fecha = ? AND practicantes.area_id = ?", fecha, areaID).
		Count(&count).Error
	return count, err
}

func (r *asistenciaRepository) CrearPausa(ctx context.Context, pausa *model.Pausa) error {
	return r.db.WithContext(ctx).Create(pausa).Error
}

func (r *asistenciaRepository) ActualizarPausa(ctx context.Context, pausa *model.Pausa) error {
	return r.db.WithContext(ctx).Save(pausa).Error
}

func (r *asistenciaRepository) ObtenerPausa(ctx context.Context, id uint) (*model.Pausa, error) {
	var pausa model.Pausa
	err := r.db.WithContext(ctx).First(&pausa, id).Error
	if err != nil {
		return nil, err
	}
	return &pausa, nil
}

func (r *asistenciaRepository) TienePausaAbierta(ctx context.Context, asistenciaID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pausa{}).
		Where("asistencia_id = ? AND hora_fin IS NULL", asistenciaID).
		Count(&count).Error
	return count > 0, err
}

func (r *asistenciaRepository) ContarPausasAbiertasDeFecha(ctx context.Context, areaID uint, fecha string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pausa{}).
		Joins("JOIN asistencias ON asistencias.id = pausas.asistencia_id").
		Joins("JOIN practicantes ON practicantes.id = asistencias.practicante_id").
		Where("asistencias.fecha = ? AND practicantes.area_id = ? AND pausas.hora_fin IS NULL", fecha, areaID).
		Count(&count).Error
	return count, err
}
