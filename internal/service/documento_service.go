package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"sipra-backend/config"
	"sipra-backend/internal/apperror"
	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

// DocumentoService genera los documentos de salida del programa (carta de
// aceptación para solicitudes aprobadas, constancia de término para
// estancias concluidas) y los envía por correo.
type DocumentoService interface {
	GenerarCartaAceptacion(ctx context.Context, solicitud *model.Solicitud) (string, error)
	GenerarConstancia(ctx context.Context, practicanteID uint) (*model.Documento, error)
	EnviarPorCorreo(destinatario, asunto, cuerpo, adjunto string) error
}

type documentoService struct {
	practicantes repository.PracticanteRepository
	documentos   repository.DocumentoRepository
	logger       *zap.Logger
	zona         *time.Location
	dirSalida    string
}

func NewDocumentoService(practicantes repository.PracticanteRepository, documentos repository.DocumentoRepository, logger *zap.Logger, zona *time.Location) DocumentoService {
	return &documentoService{
		practicantes: practicantes,
		documentos:   documentos,
		logger:       logger,
		zona:         zona,
		dirSalida:    config.GetEnv("DIR_DOCUMENTOS", "./uploads/documentos"),
	}
}

// GenerarCartaAceptacion arma el PDF de la carta para una solicitud
// aprobada y regresa la ruta del archivo generado.
func (s *documentoService) GenerarCartaAceptacion(ctx context.Context, solicitud *model.Solicitud) (string, error) {
	if err := os.MkdirAll(s.dirSalida, 0755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr("Carta de Aceptación"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	fecha := time.Now().In(s.zona).Format("02/01/2006")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr("Fecha de emisión: "+fecha), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	cuerpo := fmt.Sprintf(
		"Por medio de la presente se hace constar que %s, con matrícula %s, "+
			"estudiante de %s de %s, ha sido aceptado(a) para realizar sus "+
			"prácticas profesionales en el área de %s, con fecha de inicio %s "+
			"y fecha de término %s.",
		solicitud.Nombre, solicitud.Matricula, solicitud.Carrera,
		solicitud.Universidad, solicitud.Area.NombreArea,
		solicitud.FechaEntrada, solicitud.FechaTermino,
	)
	pdf.MultiCell(0, 7, tr(cuerpo), "", "J", false)
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, tr("Atentamente"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, tr("Coordinación de Prácticas Profesionales"), "", 1, "C", false, 0, "")

	path := filepath.Join(s.dirSalida, fmt.Sprintf("carta_aceptacion_%d.pdf", solicitud.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		s.logger.Error("fallo al generar la carta de aceptación", zap.Uint("solicitud_id", solicitud.ID), zap.Error(err))
		return "", err
	}
	return path, nil
}

// GenerarConstancia emite la constancia de término. Solo procede cuando la
// estancia ya concluyó.
func (s *documentoService) GenerarConstancia(ctx context.Context, practicanteID uint) (*model.Documento, error) {
	if practicanteID == 0 {
		return nil, apperror.Validacion("El ID del practicante debe ser un entero positivo")
	}

	practicante, err := s.practicantes.ObtenerPorID(ctx, practicanteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NoEncontrado("El practicante no existe")
		}
		return nil, err
	}

	hoy := time.Now().In(s.zona).Format("2006-01-02")
	if practicante.FechaTermino == "" || practicante.FechaTermino > hoy {
		return nil, apperror.ReglaNegocio("La estancia aún no concluye; no se puede emitir la constancia")
	}

	if err := os.MkdirAll(s.dirSalida, 0755); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr("Constancia de Término"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	cuerpo := fmt.Sprintf(
		"Se hace constar que %s, con matrícula %s, estudiante de %s de %s, "+
			"concluyó satisfactoriamente su estancia de prácticas profesionales "+
			"en el área de %s, en el periodo del %s al %s.",
		practicante.Nombre, practicante.Matricula, practicante.Carrera,
		practicante.Universidad, practicante.Area.NombreArea,
		practicante.FechaEntrada, practicante.FechaTermino,
	)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, tr(cuerpo), "", "J", false)
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, tr("Atentamente"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, tr("Coordinación de Prácticas Profesionales"), "", 1, "C", false, 0, "")

	path := filepath.Join(s.dirSalida, fmt.Sprintf("constancia_%d.pdf", practicante.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		s.logger.Error("fallo al generar la constancia", zap.Uint("practicante_id", practicanteID), zap.Error(err))
		return nil, err
	}

	documento := model.Documento{
		PracticanteID: practicante.ID,
		Tipo:          "CONSTANCIA",
		NombreArchivo: filepath.Base(path),
		Path:          path,
	}
	if err := s.documentos.Crear(ctx, &documento); err != nil {
		return nil, err
	}
	return &documento, nil
}

// EnviarPorCorreo manda el documento como adjunto vía SMTP. La configuración
// sale del entorno; si no hay host configurado la operación se omite sin
// error para no bloquear el flujo en desarrollo.
func (s *documentoService) EnviarPorCorreo(destinatario, asunto, cuerpo, adjunto string) error {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		s.logger.Warn("SMTP no configurado; se omite el envío de correo", zap.String("destinatario", destinatario))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("SMTP_REMITENTE", "practicas@sipra.local"))
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", asunto)
	m.SetBody("text/plain", cuerpo)
	if adjunto != "" {
		m.Attach(adjunto)
	}

	d := gomail.NewDialer(host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
	)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error("fallo al enviar el correo", zap.String("destinatario", destinatario), zap.Error(err))
		return err
	}
	return nil
}
