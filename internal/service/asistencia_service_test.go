package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"sipra-backend/internal/apperror"
	"sipra-backend/internal/catalogo"
	"sipra-backend/internal/model"
)

// La fecha fija de las pruebas: lunes 16 de marzo de 2026, 09:00.
var momentoFijo = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

const hoyFijo = "2026-03-16"

func setupTestAsistenciaService(t *testing.T) (*asistenciaService, *mockAsistenciaRepo, *mockPracticanteRepo) {
	t.Helper()

	repo := newMockAsistenciaRepo()
	practicantes := newMockPracticanteRepo()

	// Practicante 42 con estancia iniciada ayer
	practicantes.practicantes[42] = &model.Practicante{
		Nombre:       "Ana Torres",
		Matricula:    "A0001",
		FechaEntrada: "2026-03-15",
		IsActive:     true,
	}
	practicantes.practicantes[42].ID = 42

	svc := NewAsistenciaService(repo, practicantes, catalogo.PorDefecto(), zap.NewNop(), time.UTC).(*asistenciaService)
	svc.ahora = func() time.Time { return momentoFijo }
	return svc, repo, practicantes
}

func hora(s string) *string { return &s }

// ── RegistrarEntrada ──

func TestRegistrarEntrada_AjustaAntesDelInicio(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	resultado, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("07:30:00"))
	if err != nil {
		t.Fatalf("RegistrarEntrada debió aceptar: %v", err)
	}
	if resultado.Hora != "08:00:00" {
		t.Errorf("la hora debió ajustarse al inicio del turno, se obtuvo %s", resultado.Hora)
	}
	if resultado.Turno != "Mañana" {
		t.Errorf("se esperaba turno Mañana, se obtuvo %s", resultado.Turno)
	}
}

func TestRegistrarEntrada_DentroDeVentanaNoSeAjusta(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	resultado, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("09:00:00"))
	if err != nil {
		t.Fatalf("RegistrarEntrada debió aceptar: %v", err)
	}
	if resultado.Hora != "09:00:00" {
		t.Errorf("una hora dentro de la ventana se guarda intacta, se obtuvo %s", resultado.Hora)
	}
	if repo.asistencias[resultado.AsistenciaID].HoraEntrada != "09:00:00" {
		t.Error("la hora almacenada no coincide con la reportada")
	}
}

func TestRegistrarEntrada_SinHoraUsaElReloj(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	resultado, err := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	if err != nil {
		t.Fatalf("RegistrarEntrada debió aceptar: %v", err)
	}
	if resultado.Hora != "09:00:00" {
		t.Errorf("sin hora provista se usa el reloj, se obtuvo %s", resultado.Hora)
	}
}

func TestRegistrarEntrada_TurnoInvalido(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	_, err := svc.RegistrarEntrada(context.Background(), 42, 9, nil)
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
	// La pertenencia al catálogo se valida antes de tocar el almacenamiento
	if repo.accesos != 0 {
		t.Errorf("no debió haber accesos al almacenamiento, hubo %d", repo.accesos)
	}
}

func TestRegistrarEntrada_PracticanteCero(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.RegistrarEntrada(context.Background(), 0, 1, nil)
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
}

func TestRegistrarEntrada_HoraMalFormada(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("9 en punto"))
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
}

func TestRegistrarEntrada_DuplicadaMismoTurno(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	if _, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("08:10:00")); err != nil {
		t.Fatalf("la primera entrada debió aceptarse: %v", err)
	}

	_, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("08:20:00"))
	if !apperror.Es(err, apperror.TipoConflicto) {
		t.Fatalf("se esperaba conflicto por entrada duplicada, se obtuvo: %v", err)
	}
	if len(repo.asistencias) != 1 {
		t.Errorf("no debió crearse un segundo registro, hay %d", len(repo.asistencias))
	}
}

func TestRegistrarEntrada_DuplicadaBajoCarrera(t *testing.T) {
	// Dos peticiones simultáneas pueden pasar ambas la verificación previa;
	// el índice único de la base es quien cierra la ventana.
	svc, repo, _ := setupTestAsistenciaService(t)
	repo.forzarDuplicado = true

	_, err := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	if !apperror.Es(err, apperror.TipoConflicto) {
		t.Fatalf("el choque con el índice único debió traducirse a conflicto, se obtuvo: %v", err)
	}
}

func TestRegistrarEntrada_EstanciaNoIniciada(t *testing.T) {
	svc, repo, practicantes := setupTestAsistenciaService(t)
	practicantes.practicantes[42].FechaEntrada = "2026-03-20" // futuro

	_, err := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	if !apperror.Es(err, apperror.TipoReglaNegocio) {
		t.Fatalf("se esperaba error de regla de negocio, se obtuvo: %v", err)
	}
	if len(repo.asistencias) != 0 {
		t.Error("no debió escribirse ningún registro")
	}
}

func TestRegistrarEntrada_PracticanteDesconocido(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.RegistrarEntrada(context.Background(), 77, 1, nil)
	if !apperror.Es(err, apperror.TipoNoEncontrado) {
		t.Fatalf("se esperaba no encontrado, se obtuvo: %v", err)
	}
}

// ── RegistrarSalida ──

func TestRegistrarSalida_AjustaDespuesDelFin(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	if _, err := svc.RegistrarEntrada(context.Background(), 42, 2, hora("11:30:00")); err != nil {
		t.Fatalf("la entrada debió aceptarse: %v", err)
	}

	resultado, err := svc.RegistrarSalida(context.Background(), 42, hora("17:45:00"))
	if err != nil {
		t.Fatalf("RegistrarSalida debió aceptar: %v", err)
	}
	if resultado.Hora != "16:30:00" {
		t.Errorf("la hora debió ajustarse al fin del turno, se obtuvo %s", resultado.Hora)
	}
	if resultado.Turno != "Tarde" {
		t.Errorf("se esperaba turno Tarde, se obtuvo %s", resultado.Turno)
	}
}

func TestRegistrarSalida_DentroDeVentanaNoSeAjusta(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	res, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("08:00:00"))
	if err != nil {
		t.Fatalf("la entrada debió aceptarse: %v", err)
	}

	resultado, err := svc.RegistrarSalida(context.Background(), 42, hora("12:00:00"))
	if err != nil {
		t.Fatalf("RegistrarSalida debió aceptar: %v", err)
	}
	if resultado.Hora != "12:00:00" {
		t.Errorf("una salida dentro de la ventana se guarda intacta, se obtuvo %s", resultado.Hora)
	}
	if repo.asistencias[res.AsistenciaID].HoraSalida == nil || *repo.asistencias[res.AsistenciaID].HoraSalida != "12:00:00" {
		t.Error("la hora de salida no quedó almacenada")
	}
}

func TestRegistrarSalida_SinEntradaAbierta(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.RegistrarSalida(context.Background(), 42, nil)
	if !apperror.Es(err, apperror.TipoNoEncontrado) {
		t.Fatalf("se esperaba no encontrado, se obtuvo: %v", err)
	}
}

func TestRegistrarSalida_EstanciaNoIniciada(t *testing.T) {
	svc, _, practicantes := setupTestAsistenciaService(t)
	practicantes.practicantes[42].FechaEntrada = "2026-03-20"

	_, err := svc.RegistrarSalida(context.Background(), 42, nil)
	if !apperror.Es(err, apperror.TipoReglaNegocio) {
		t.Fatalf("se esperaba error de regla de negocio, se obtuvo: %v", err)
	}
}

func TestRegistrarSalida_EligeElRegistroAbierto(t *testing.T) {
	// Con el turno de la mañana ya cerrado, la salida aplica al registro
	// abierto de la tarde sin importar el orden de creación.
	svc, repo, _ := setupTestAsistenciaService(t)

	mananaCerrada, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("08:00:00"))
	if err != nil {
		t.Fatalf("la entrada de la mañana debió aceptarse: %v", err)
	}
	cierre := "13:00:00"
	repo.asistencias[mananaCerrada.AsistenciaID].HoraSalida = &cierre

	tarde, err := svc.RegistrarEntrada(context.Background(), 42, 2, hora("11:20:00"))
	if err != nil {
		t.Fatalf("la entrada de la tarde debió aceptarse: %v", err)
	}

	resultado, err := svc.RegistrarSalida(context.Background(), 42, hora("16:00:00"))
	if err != nil {
		t.Fatalf("RegistrarSalida debió aceptar: %v", err)
	}
	if resultado.Turno != "Tarde" {
		t.Errorf("la salida debió aplicarse al registro abierto (Tarde), se obtuvo %s", resultado.Turno)
	}
	if repo.asistencias[tarde.AsistenciaID].HoraSalida == nil {
		t.Error("el registro de la tarde debió quedar cerrado")
	}
	if *repo.asistencias[mananaCerrada.AsistenciaID].HoraSalida != cierre {
		t.Error("el registro de la mañana no debió tocarse")
	}
}

// ── Pausas ──

func TestIniciarPausa_Correcta(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	entrada, err := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	if err != nil {
		t.Fatalf("la entrada debió aceptarse: %v", err)
	}

	motivo := "Comida"
	resultado, err := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, &motivo)
	if err != nil {
		t.Fatalf("IniciarPausa debió aceptar: %v", err)
	}
	if resultado.HoraInicio != "09:00:00" {
		t.Errorf("la pausa inicia con la hora del reloj, se obtuvo %s", resultado.HoraInicio)
	}
	if repo.pausasAbiertas(entrada.AsistenciaID) != 1 {
		t.Error("debió quedar exactamente una pausa abierta")
	}
}

func TestIniciarPausa_MotivoFueraDeRango(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	entrada, _ := svc.RegistrarEntrada(context.Background(), 42, 1, nil)

	corto := "ok"
	if _, err := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, &corto); !apperror.Es(err, apperror.TipoValidacion) {
		t.Errorf("un motivo de 2 caracteres debió rechazarse, se obtuvo: %v", err)
	}

	largo := make([]rune, 501)
	for i := range largo {
		largo[i] = 'a'
	}
	s := string(largo)
	if _, err := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, &s); !apperror.Es(err, apperror.TipoValidacion) {
		t.Errorf("un motivo de 501 caracteres debió rechazarse, se obtuvo: %v", err)
	}
}

func TestIniciarPausa_YaHayUnaActiva(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	entrada, _ := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	if _, err := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, nil); err != nil {
		t.Fatalf("la primera pausa debió aceptarse: %v", err)
	}

	_, err := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, nil)
	if !apperror.Es(err, apperror.TipoConflicto) {
		t.Fatalf("se esperaba conflicto por pausa activa, se obtuvo: %v", err)
	}
	if repo.pausasAbiertas(entrada.AsistenciaID) != 1 {
		t.Error("no debió crearse una segunda pausa abierta")
	}
}

func TestIniciarPausa_AsistenciaInexistente(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.IniciarPausa(context.Background(), 99, nil)
	if !apperror.Es(err, apperror.TipoNoEncontrado) {
		t.Fatalf("se esperaba no encontrado, se obtuvo: %v", err)
	}
}

func TestFinalizarPausa_Correcta(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	entrada, _ := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	pausa, _ := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, nil)

	resultado, err := svc.FinalizarPausa(context.Background(), pausa.PausaID)
	if err != nil {
		t.Fatalf("FinalizarPausa debió aceptar: %v", err)
	}
	if resultado.HoraFin == nil || *resultado.HoraFin != "09:00:00" {
		t.Error("la pausa debió cerrarse con la hora del reloj")
	}
}

func TestFinalizarPausa_YaFinalizada(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	entrada, _ := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	pausa, _ := svc.IniciarPausa(context.Background(), entrada.AsistenciaID, nil)
	if _, err := svc.FinalizarPausa(context.Background(), pausa.PausaID); err != nil {
		t.Fatalf("el primer cierre debió aceptarse: %v", err)
	}

	_, err := svc.FinalizarPausa(context.Background(), pausa.PausaID)
	if !apperror.Es(err, apperror.TipoConflicto) {
		t.Fatalf("cerrar dos veces la misma pausa debió dar conflicto, se obtuvo: %v", err)
	}
}

func TestFinalizarPausa_Inexistente(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.FinalizarPausa(context.Background(), 99)
	if !apperror.Es(err, apperror.TipoNoEncontrado) {
		t.Fatalf("se esperaba no encontrado, se obtuvo: %v", err)
	}
}

// ── Consultas ──

func TestAsistenciaDeHoy_SinRegistro(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	asistencia, err := svc.AsistenciaDeHoy(context.Background(), 42)
	if err != nil {
		t.Fatalf("la ausencia de registro no es un error: %v", err)
	}
	if asistencia != nil {
		t.Error("sin registro el resultado debe ser nil")
	}
}

func TestAsistenciaDeHoy_ConPausas(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	entrada, _ := svc.RegistrarEntrada(context.Background(), 42, 1, nil)
	svc.IniciarPausa(context.Background(), entrada.AsistenciaID, nil)

	asistencia, err := svc.AsistenciaDeHoy(context.Background(), 42)
	if err != nil {
		t.Fatalf("AsistenciaDeHoy debió aceptar: %v", err)
	}
	if asistencia == nil || len(asistencia.Pausas) != 1 {
		t.Error("el registro del día debe incluir sus pausas")
	}
}

func TestListarPorArea_FechaInvalida(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	mala := "16/03/2026"
	_, err := svc.ListarPorArea(context.Background(), 1, &mala)
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
}

func TestListarPorArea_AreaCero(t *testing.T) {
	svc, _, _ := setupTestAsistenciaService(t)

	_, err := svc.ListarPorArea(context.Background(), 0, nil)
	if !apperror.Es(err, apperror.TipoValidacion) {
		t.Fatalf("se esperaba error de validación, se obtuvo: %v", err)
	}
}

// ── Escenario completo ──

func TestFlujoCompleto(t *testing.T) {
	svc, repo, _ := setupTestAsistenciaService(t)

	// Entrada temprana: se registra al inicio del turno
	entrada, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("07:45:00"))
	if err != nil {
		t.Fatalf("la entrada debió aceptarse: %v", err)
	}
	if entrada.Hora != "08:00:00" {
		t.Errorf("la entrada debió ajustarse a 08:00:00, se obtuvo %s", entrada.Hora)
	}

	// Segundo intento el mismo día y turno: conflicto
	if _, err := svc.RegistrarEntrada(context.Background(), 42, 1, hora("08:10:00")); !apperror.Es(err, apperror.TipoConflicto) {
		t.Fatalf("la segunda entrada debió dar conflicto, se obtuvo: %v", err)
	}

	// Salida tardía: se registra al fin del turno
	salida, err := svc.RegistrarSalida(context.Background(), 42, hora("13:40:00"))
	if err != nil {
		t.Fatalf("la salida debió aceptarse: %v", err)
	}
	if salida.Hora != "13:15:00" {
		t.Errorf("la salida debió ajustarse a 13:15:00, se obtuvo %s", salida.Hora)
	}

	guardada := repo.asistencias[entrada.AsistenciaID]
	if guardada.HoraEntrada != "08:00:00" || guardada.HoraSalida == nil || *guardada.HoraSalida != "13:15:00" {
		t.Error("el registro almacenado no refleja las horas ajustadas")
	}
	if guardada.Fecha != hoyFijo {
		t.Errorf("la fecha del registro debió ser %s, se obtuvo %s", hoyFijo, guardada.Fecha)
	}
}
