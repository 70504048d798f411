package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sipra-backend/internal/apperror"
	"sipra-backend/internal/repository"
)

type FilaReporte struct {
	PracticanteID uint   `json:"practicante_id"`
	Nombre        string `json:"nombre"`
	Matricula     string `json:"matricula"`
	DiasAsistidos int    `json:"dias_asistidos"`
	DiasHabiles   int    `json:"dias_habiles"`
	Faltas        int    `json:"faltas"`
	PausasTomadas int    `json:"pausas_tomadas"`
}

type ReporteMensual struct {
	AreaID uint          `json:"area_id"`
	Mes    string        `json:"mes"`
	Anio   string        `json:"anio"`
	Filas  []FilaReporte `json:"filas"`
}

// ReporteService arma el concentrado mensual de asistencia por área y lo
// exporta a Excel. Los días hábiles excluyen fines de semana y los días
// inhábiles capturados por el administrador.
type ReporteService interface {
	ReporteMensual(ctx context.Context, areaID uint, mes, anio string) (*ReporteMensual, error)
	ExportarExcel(ctx context.Context, areaID uint, mes, anio string) (*bytes.Buffer, string, error)
}

type reporteService struct {
	asistencias   repository.AsistenciaRepository
	practicantes  repository.PracticanteRepository
	diasInhabiles repository.DiaInhabilRepository
	logger        *zap.Logger
	zona          *time.Location
}

func NewReporteService(asistencias repository.AsistenciaRepository, practicantes repository.PracticanteRepository, diasInhabiles repository.DiaInhabilRepository, logger *zap.Logger, zona *time.Location) ReporteService {
	return &reporteService{
		asistencias:   asistencias,
		practicantes:  practicantes,
		diasInhabiles: diasInhabiles,
		logger:        logger,
		zona:          zona,
	}
}

func (s *reporteService) ReporteMensual(ctx context.Context, areaID uint, mes, anio string) (*ReporteMensual, error) {
	if areaID == 0 {
		return nil, apperror.Validacion("El ID del área debe ser un entero positivo")
	}
	primerDia, err := time.ParseInLocation("2006-01-02", fmt.Sprintf("%s-%s-01", anio, mes), s.zona)
	if err != nil {
		return nil, apperror.Validacion("Mes y año deben tener los formatos MM y YYYY")
	}

	practicantes, err := s.practicantes.ListarPorArea(ctx, areaID)
	if err != nil {
		s.logger.Error("fallo al listar practicantes del área", zap.Uint("area_id", areaID), zap.Error(err))
		return nil, err
	}

	habiles, err := s.diasHabilesDelMes(ctx, primerDia)
	if err != nil {
		return nil, err
	}

	reporte := &ReporteMensual{AreaID: areaID, Mes: mes, Anio: anio}
	for _, p := range practicantes {
		asistencias, err := s.asistencias.ListarPorMes(ctx, p.ID, mes, anio)
		if err != nil {
			s.logger.Error("fallo al listar asistencias del mes", zap.Uint("practicante_id", p.ID), zap.Error(err))
			return nil, err
		}

		// Dos turnos en un día cuentan como un día asistido.
		dias := make(map[string]bool)
		pausas := 0
		for _, a := range asistencias {
			dias[a.Fecha] = true
			pausas += len(a.Pausas)
		}

		faltas := habiles - len(dias)
		if faltas < 0 {
			faltas = 0
		}
		reporte.Filas = append(reporte.Filas, FilaReporte{
			PracticanteID: p.ID,
			Nombre:        p.Nombre,
			Matricula:     p.Matricula,
			DiasAsistidos: len(dias),
			DiasHabiles:   habiles,
			Faltas:        faltas,
			PausasTomadas: pausas,
		})
	}
	return reporte, nil
}

func (s *reporteService) ExportarExcel(ctx context.Context, areaID uint, mes, anio string) (*bytes.Buffer, string, error) {
	reporte, err := s.ReporteMensual(ctx, areaID, mes, anio)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	hoja := "Asistencia"
	f.SetSheetName("Sheet1", hoja)

	encabezados := []string{"Matrícula", "Nombre", "Días asistidos", "Días hábiles", "Faltas", "Pausas"}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hoja, celda, h)
	}

	for fila, r := range reporte.Filas {
		valores := []interface{}{r.Matricula, r.Nombre, r.DiasAsistidos, r.DiasHabiles, r.Faltas, r.PausasTomadas}
		for col, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			f.SetCellValue(hoja, celda, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("fallo al generar el archivo Excel", zap.Error(err))
		return nil, "", err
	}

	nombre := fmt.Sprintf("asistencia_area%d_%s-%s.xlsx", areaID, anio, mes)
	return buf, nombre, nil
}

// diasHabilesDelMes cuenta lunes a viernes del mes, descontando los días
// inhábiles registrados.
func (s *reporteService) diasHabilesDelMes(ctx context.Context, primerDia time.Time) (int, error) {
	ultimoDia := primerDia.AddDate(0, 1, -1)

	inhabiles, err := s.diasInhabiles.ListarEnRango(ctx, primerDia.Format("2006-01-02"), ultimoDia.Format("2006-01-02"))
	if err != nil {
		s.logger.Error("fallo al consultar días inhábiles", zap.Error(err))
		return 0, err
	}
	marcados := make(map[string]bool, len(inhabiles))
	for _, d := range inhabiles {
		marcados[d.Fecha] = true
	}

	habiles := 0
	for d := primerDia; !d.After(ultimoDia); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if marcados[d.Format("2006-01-02")] {
			continue
		}
		habiles++
	}
	return habiles, nil
}
