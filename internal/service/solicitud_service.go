package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sipra-backend/internal/apperror"
	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

// SolicitudService procesa las solicitudes de incorporación: al aprobar una
// se da de alta al practicante, se crean sus credenciales y se le envía la
// carta de aceptación generada.
type SolicitudService interface {
	Aprobar(ctx context.Context, solicitudID uint) (*model.Practicante, error)
	Rechazar(ctx context.Context, solicitudID uint, motivo string) error
}

type solicitudService struct {
	solicitudes  repository.SolicitudRepository
	practicantes repository.PracticanteRepository
	usuarios     repository.UsuarioRepository
	documentos   DocumentoService
	logger       *zap.Logger
}

func NewSolicitudService(solicitudes repository.SolicitudRepository, practicantes repository.PracticanteRepository, usuarios repository.UsuarioRepository, documentos DocumentoService, logger *zap.Logger) SolicitudService {
	return &solicitudService{
		solicitudes:  solicitudes,
		practicantes: practicantes,
		usuarios:     usuarios,
		documentos:   documentos,
		logger:       logger,
	}
}

func (s *solicitudService) Aprobar(ctx context.Context, solicitudID uint) (*model.Practicante, error) {
	solicitud, err := s.obtenerPendiente(ctx, solicitudID)
	if err != nil {
		return nil, err
	}

	practicante := model.Practicante{
		AreaID:       solicitud.AreaID,
		Nombre:       solicitud.Nombre,
		Matricula:    solicitud.Matricula,
		Carrera:      solicitud.Carrera,
		Universidad:  solicitud.Universidad,
		Email:        solicitud.Email,
		Telefono:     solicitud.Telefono,
		FechaEntrada: solicitud.FechaEntrada,
		FechaTermino: solicitud.FechaTermino,
		IsActive:     true,
	}
	if err := s.practicantes.Crear(ctx, &practicante); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflicto("Ya existe un practicante con esa matrícula")
		}
		s.logger.Error("fallo al dar de alta al practicante", zap.Uint("solicitud_id", solicitudID), zap.Error(err))
		return nil, err
	}

	// Credenciales iniciales: la matrícula como contraseña temporal.
	hash, err := bcrypt.GenerateFromPassword([]byte(solicitud.Matricula), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := model.Usuario{
		PracticanteID: &practicante.ID,
		Nombre:        solicitud.Nombre,
		Email:         solicitud.Email,
		Password:      string(hash),
		Rol:           "Practicante",
		IsActive:      true,
	}
	if err := s.usuarios.Crear(ctx, &usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflicto("Ya existe un usuario con ese correo")
		}
		s.logger.Error("fallo al crear las credenciales", zap.Uint("solicitud_id", solicitudID), zap.Error(err))
		return nil, err
	}

	carta, err := s.documentos.GenerarCartaAceptacion(ctx, solicitud)
	if err != nil {
		return nil, err
	}

	solicitud.Estado = "APROBADA"
	solicitud.PathCarta = carta
	if err := s.solicitudes.Actualizar(ctx, solicitud); err != nil {
		s.logger.Error("fallo al actualizar la solicitud", zap.Uint("solicitud_id", solicitudID), zap.Error(err))
		return nil, err
	}

	cuerpo := fmt.Sprintf("Hola %s,\n\nTu solicitud fue aprobada. Adjuntamos tu carta de aceptación.\n\nTu usuario es tu correo y tu contraseña temporal es tu matrícula.", solicitud.Nombre)
	if err := s.documentos.EnviarPorCorreo(solicitud.Email, "Carta de aceptación", cuerpo, carta); err != nil {
		// El alta ya quedó; el correo se puede reenviar después.
		s.logger.Warn("la carta no pudo enviarse por correo", zap.Uint("solicitud_id", solicitudID), zap.Error(err))
	}

	return &practicante, nil
}

func (s *solicitudService) Rechazar(ctx context.Context, solicitudID uint, motivo string) error {
	if motivo == "" {
		return apperror.Validacion("El motivo de rechazo es obligatorio")
	}

	solicitud, err := s.obtenerPendiente(ctx, solicitudID)
	if err != nil {
		return err
	}

	solicitud.Estado = "RECHAZADA"
	solicitud.MotivoRechazo = motivo
	if err := s.solicitudes.Actualizar(ctx, solicitud); err != nil {
		s.logger.Error("fallo al rechazar la solicitud", zap.Uint("solicitud_id", solicitudID), zap.Error(err))
		return err
	}
	return nil
}

func (s *solicitudService) obtenerPendiente(ctx context.Context, solicitudID uint) (*model.Solicitud, error) {
	if solicitudID == 0 {
		return nil, apperror.Validacion("El ID de solicitud debe ser un entero positivo")
	}
	solicitud, err := s.solicitudes.ObtenerPorID(ctx, solicitudID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NoEncontrado("La solicitud no existe")
		}
		return nil, err
	}
	if solicitud.Estado != "PENDIENTE" {
		return nil, apperror.Conflicto("La solicitud ya fue procesada")
	}
	return solicitud, nil
}
