package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipra-backend/internal/apperror"
	"sipra-backend/internal/catalogo"
	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

// Resultados tipados por operación. El handler los serializa tal cual.

type ResultadoEntrada struct {
	AsistenciaID uint   `json:"asistencia_id"`
	Hora         string `json:"hora"`
	Turno        string `json:"turno"`
}

type ResultadoSalida struct {
	Hora  string `json:"hora"`
	Turno string `json:"turno"`
}

type ResultadoPausa struct {
	PausaID    uint    `json:"pausa_id"`
	HoraInicio string  `json:"hora_inicio"`
	HoraFin    *string `json:"hora_fin,omitempty"`
}

// AsistenciaService es el motor del flujo de asistencia: una entrada por
// turno por día, horas ajustadas a los límites del turno, pausas con a lo
// más una abierta, y rechazo de registros antes del inicio de la estancia.
type AsistenciaService interface {
	RegistrarEntrada(ctx context.Context, practicanteID, turnoID uint, horaEntrada *string) (*ResultadoEntrada, error)
	RegistrarSalida(ctx context.Context, practicanteID uint, horaSalida *string) (*ResultadoSalida, error)
	IniciarPausa(ctx context.Context, asistenciaID uint, motivo *string) (*ResultadoPausa, error)
	FinalizarPausa(ctx context.Context, pausaID uint) (*ResultadoPausa, error)
	// AsistenciaDeHoy regresa (nil, nil) cuando aún no hay registro; el
	// handler distingue ese caso de una falla real.
	AsistenciaDeHoy(ctx context.Context, practicanteID uint) (*model.Asistencia, error)
	ListarPorArea(ctx context.Context, areaID uint, fecha *string) ([]model.Asistencia, error)
}

type asistenciaService struct {
	repo         repository.AsistenciaRepository
	practicantes repository.PracticanteRepository
	turnos       *catalogo.Catalogo
	logger       *zap.Logger
	zona         *time.Location
	ahora        func() time.Time // inyectable en pruebas
}

func NewAsistenciaService(repo repository.AsistenciaRepository, practicantes repository.PracticanteRepository, turnos *catalogo.Catalogo, logger *zap.Logger, zona *time.Location) AsistenciaService {
	return &asistenciaService{
		repo:         repo,
		practicantes: practicantes,
		turnos:       turnos,
		logger:       logger,
		zona:         zona,
		ahora:        time.Now,
	}
}

const (
	formatoFecha = "2006-01-02"
	formatoHora  = "15:04:05"
)

// ────────────────────── RegistrarEntrada ──────────────────────

func (s *asistenciaService) RegistrarEntrada(ctx context.Context, practicanteID, turnoID uint, horaEntrada *string) (*ResultadoEntrada, error) {
	if practicanteID == 0 {
		return nil, apperror.Validacion("El ID del practicante debe ser un entero positivo")
	}
	// La pertenencia al catálogo se valida antes de tocar el almacenamiento.
	if turnoID == 0 || !s.turnos.Existe(turnoID) {
		return nil, apperror.Validacion(fmt.Sprintf("El turno %d no es un turno válido", turnoID))
	}
	turno, err := s.turnos.Obtener(turnoID)
	if err != nil {
		return nil, err
	}

	momento := s.ahora().In(s.zona)
	hoy := momento.Format(formatoFecha)

	hora, err := s.resolverHora(horaEntrada, momento)
	if err != nil {
		return nil, err
	}

	if err := s.validarInicioEstancia(ctx, practicanteID, hoy); err != nil {
		return nil, err
	}

	// Llegar antes del turno se registra exactamente a la hora de inicio.
	if hora < turno.HoraInicio {
		hora = turno.HoraInicio
	}

	existe, err := s.repo.ExistePorTurno(ctx, practicanteID, hoy, turnoID)
	if err != nil {
		s.logger.Error("fallo al verificar registro previo", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return nil, err
	}
	if existe {
		return nil, apperror.Conflicto(fmt.Sprintf("Ya existe registro de entrada para el turno de %s hoy", turno.Nombre))
	}

	asistencia := model.Asistencia{
		PracticanteID: practicanteID,
		Fecha:         hoy,
		TurnoID:       turnoID,
		HoraEntrada:   hora,
	}
	if err := s.repo.Crear(ctx, &asistencia); err != nil {
		// Dos peticiones simultáneas pueden pasar ambas la verificación de
		// arriba; el índice único cierra esa ventana y aquí se traduce.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflicto(fmt.Sprintf("Ya existe registro de entrada para el turno de %s hoy", turno.Nombre))
		}
		s.logger.Error("fallo al guardar la entrada", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return nil, err
	}

	return &ResultadoEntrada{AsistenciaID: asistencia.ID, Hora: hora, Turno: turno.Nombre}, nil
}

// ────────────────────── RegistrarSalida ──────────────────────

func (s *asistenciaService) RegistrarSalida(ctx context.Context, practicanteID uint, horaSalida *string) (*ResultadoSalida, error) {
	if practicanteID == 0 {
		return nil, apperror.Validacion("El ID del practicante debe ser un entero positivo")
	}

	momento := s.ahora().In(s.zona)
	hoy := momento.Format(formatoFecha)

	hora, err := s.resolverHora(horaSalida, momento)
	if err != nil {
		return nil, err
	}

	if err := s.validarInicioEstancia(ctx, practicanteID, hoy); err != nil {
		return nil, err
	}

	asistencia, err := s.repo.BuscarAbierta(ctx, practicanteID, hoy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NoEncontrado("No hay un registro de entrada activo para hoy")
		}
		s.logger.Error("fallo al buscar el registro abierto", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return nil, err
	}

	turno, err := s.turnos.Obtener(asistencia.TurnoID)
	if err != nil {
		return nil, err
	}

	// Salir después del fin del turno se registra exactamente al fin.
	if hora > turno.HoraFin {
		hora = turno.HoraFin
	}

	asistencia.HoraSalida = &hora
	if err := s.repo.Actualizar(ctx, asistencia); err != nil {
		s.logger.Error("fallo al guardar la salida", zap.Uint("asistencia_id", asistencia.ID), zap.Error(err))
		return nil, err
	}

	return &ResultadoSalida{Hora: hora, Turno: turno.Nombre}, nil
}

// ────────────────────── Pausas ──────────────────────

func (s *asistenciaService) IniciarPausa(ctx context.Context, asistenciaID uint, motivo *string) (*ResultadoPausa, error) {
	if asistenciaID == 0 {
		return nil, apperror.Validacion("El ID de asistencia debe ser un entero positivo")
	}
	if motivo != nil {
		if n := len([]rune(*motivo)); n < 3 || n > 500 {
			return nil, apperror.Validacion("El motivo debe tener entre 3 y 500 caracteres")
		}
	}

	if _, err := s.repo.ObtenerPorID(ctx, asistenciaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NoEncontrado("El registro de asistencia no existe")
		}
		return nil, err
	}

	abierta, err := s.repo.TienePausaAbierta(ctx, asistenciaID)
	if err != nil {
		s.logger.Error("fallo al verificar pausas abiertas", zap.Uint("asistencia_id", asistenciaID), zap.Error(err))
		return nil, err
	}
	if abierta {
		return nil, apperror.Conflicto("Ya hay una pausa activa para este registro")
	}

	pausa := model.Pausa{
		AsistenciaID: asistenciaID,
		HoraInicio:   s.ahora().In(s.zona).Format(formatoHora),
		Motivo:       motivo,
	}
	if err := s.repo.CrearPausa(ctx, &pausa); err != nil {
		s.logger.Error("fallo al guardar la pausa", zap.Uint("asistencia_id", asistenciaID), zap.Error(err))
		return nil, err
	}

	return &ResultadoPausa{PausaID: pausa.ID, HoraInicio: pausa.HoraInicio}, nil
}

func (s *asistenciaService) FinalizarPausa(ctx context.Context, pausaID uint) (*ResultadoPausa, error) {
	if pausaID == 0 {
		return nil, apperror.Validacion("El ID de pausa debe ser un entero positivo")
	}

	pausa, err := s.repo.ObtenerPausa(ctx, pausaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NoEncontrado("La pausa no existe")
		}
		return nil, err
	}

	// Una pausa cerrada no se reabre ni se sobreescribe su hora de fin.
	if pausa.HoraFin != nil {
		return nil, apperror.Conflicto("La pausa ya fue finalizada")
	}

	fin := s.ahora().In(s.zona).Format(formatoHora)
	pausa.HoraFin = &fin
	if err := s.repo.ActualizarPausa(ctx, pausa); err != nil {
		s.logger.Error("fallo al cerrar la pausa", zap.Uint("pausa_id", pausaID), zap.Error(err))
		return nil, err
	}

	return &ResultadoPausa{PausaID: pausa.ID, HoraInicio: pausa.HoraInicio, HoraFin: pausa.HoraFin}, nil
}

// ────────────────────── Consultas ──────────────────────

func (s *asistenciaService) AsistenciaDeHoy(ctx context.Context, practicanteID uint) (*model.Asistencia, error) {
	if practicanteID == 0 {
		return nil, apperror.Validacion("El ID del practicante debe ser un entero positivo")
	}

	hoy := s.ahora().In(s.zona).Format(formatoFecha)
	asistencia, err := s.repo.ObtenerDeFecha(ctx, practicanteID, hoy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // sin registro hoy; no es un error
		}
		s.logger.Error("fallo al consultar la asistencia del día", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return nil, err
	}
	return asistencia, nil
}

func (s *asistenciaService) ListarPorArea(ctx context.Context, areaID uint, fecha *string) ([]model.Asistencia, error) {
	if areaID == 0 {
		return nil, apperror.Validacion("El ID del área debe ser un entero positivo")
	}

	dia := s.ahora().In(s.zona).Format(formatoFecha)
	if fecha != nil {
		if _, err := time.Parse(formatoFecha, *fecha); err != nil {
			return nil, apperror.Validacion("La fecha debe tener el formato YYYY-MM-DD")
		}
		dia = *fecha
	}

	lista, err := s.repo.ListarPorAreaYFecha(ctx, areaID, dia)
	if err != nil {
		s.logger.Error("fallo al listar asistencias por área", zap.Uint("area_id", areaID), zap.Error(err))
		return nil, err
	}
	return lista, nil
}

// ────────────────────── Reglas auxiliares ──────────────────────

// resolverHora toma la hora provista por el cliente o la hora de reloj.
// Las horas son cadenas HH:MM:SS de ancho fijo; la comparación lexicográfica
// entre ellas es válida por eso.
func (s *asistenciaService) resolverHora(hora *string, momento time.Time) (string, error) {
	if hora == nil || *hora == "" {
		return momento.Format(formatoHora), nil
	}
	if _, err := time.Parse(formatoHora, *hora); err != nil {
		return "", apperror.Validacion("La hora debe tener el formato HH:MM:SS")
	}
	return *hora, nil
}

// validarInicioEstancia rechaza registros antes de la fecha de inicio del
// programa del practicante.
func (s *asistenciaService) validarInicioEstancia(ctx context.Context, practicanteID uint, hoy string) error {
	fechaEntrada, err := s.practicantes.FechaEntrada(ctx, practicanteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NoEncontrado("El practicante no existe")
		}
		s.logger.Error("fallo al consultar la fecha de entrada", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return err
	}
	if fechaEntrada != "" && fechaEntrada > hoy {
		return apperror.ReglaNegocio("El practicante aún no inicia su estancia; no puede registrar asistencia")
	}
	return nil
}
