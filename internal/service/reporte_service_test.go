package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"sipra-backend/internal/apperror"
	"sipra-backend/internal/model"
)

func setupTestReporteService(t *testing.T) (ReporteService, *mockAsistenciaRepo, *mockPracticanteRepo, *mockDiaInhabilRepo) {
	t.Helper()

	asistencias := newMockAsistenciaRepo()
	practicantes := newMockPracticanteRepo()
	dias := newMockDiaInhabilRepo()
	svc := NewReporteService(asistencias, practicantes, dias, zap.NewNop(), time.UTC)
	return svc, asistencias, practicantes, dias
}

func TestReporteMensual(t *testing.T) {
	svc, asistencias, practicantes, dias := setupTestReporteService(t)

	p := &model.Practicante{Nombre: "Ana Torres", Matricula: "A0001", AreaID: 1, IsActive: true}
	p.ID = 42
	practicantes.practicantes[42] = p

	// Día puente dentro de marzo
	dias.dias["2026-03-16"] = "Suspensión de labores"

	// Dos turnos el mismo día cuentan como un solo día asistido
	asistencias.Crear(context.Background(), &model.Asistencia{PracticanteID: 42, Fecha: "2026-03-02", TurnoID: 1, HoraEntrada: "08:00:00"})
	asistencias.Crear(context.Background(), &model.Asistencia{PracticanteID: 42, Fecha: "2026-03-02", TurnoID: 2, HoraEntrada: "11:15:00"})
	entrada := &model.Asistencia{PracticanteID: 42, Fecha: "2026-03-03", TurnoID: 1, HoraEntrada: "08:00:00"}
	asistencias.Crear(context.Background(), entrada)
	asistencias.CrearPausa(context.Background(), &model.Pausa{AsistenciaID: entrada.ID, HoraInicio: "10:00:00"})

	reporte, err := svc.ReporteMensual(context.Background(), 1, "03", "2026")
	if err != nil {
		t.Fatalf("ReporteMensual debió aceptar: %v", err)
	}
	if len(reporte.Filas) != 1 {
		t.Fatalf("se esperaba una fila, hay %d", len(reporte.Filas))
	}

	fila := reporte.Filas[0]
	if fila.DiasAsistidos != 2 {
		t.Errorf("se esperaban 2 días asistidos, se obtuvo %d", fila.DiasAsistidos)
	}
	// Marzo de 2026 tiene 22 días entre semana; uno está marcado inhábil
	if fila.DiasHabiles != 21 {
		t.Errorf("se esperaban 21 días hábiles, se obtuvo %d", fila.DiasHabiles)
	}
	if fila.Faltas != 19 {
		t.Errorf("se esperaban 19 faltas, se obtuvo %d", fila.Faltas)
	}
	if fila.PausasTomadas != 1 {
		t.Errorf("se esperaba 1 pausa, se obtuvo %d", fila.PausasTomadas)
	}
}

func TestReporteMensual_MesInvalido(t *testing.T) {
	svc, _, _, _ := setupTestReporteService(t)

	_, err := svc.ReporteMensual(context.Background(), 1, "13", "2026")
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
}

func TestExportarExcel(t *testing.T) {
	svc, _, practicantes, _ := setupTestReporteService(t)

	p := &model.Practicante{Nombre: "Ana Torres", Matricula: "A0001", AreaID: 1, IsActive: true}
	p.ID = 42
	practicantes.practicantes[42] = p

	buf, nombre, err := svc.ExportarExcel(context.Background(), 1, "03", "2026")
	if err != nil {
		t.Fatalf("ExportarExcel debió aceptar: %v", err)
	}
	if !strings.HasSuffix(nombre, ".xlsx") {
		t.Errorf("el nombre del archivo debe terminar en .xlsx: %s", nombre)
	}
	// Un .xlsx es un contenedor zip: empieza con la firma PK
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("el contenido no parece un archivo xlsx")
	}
}
