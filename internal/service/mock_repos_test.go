package service

import (
	"context"

	"gorm.io/gorm"

	"sipra-backend/internal/model"
)

// ── Mock AsistenciaRepository ──

type mockAsistenciaRepo struct {
	asistencias map[uint]*model.Asistencia
	pausas      map[uint]*model.Pausa
	siguienteID uint

	// Cuenta los accesos al almacenamiento para verificar que las
	// validaciones de entrada se hacen antes de cualquier consulta.
	accesos int

	// Simula la ventana de carrera: el chequeo de existencia pasa pero el
	// insert choca con el índice único.
	forzarDuplicado bool
}

func newMockAsistenciaRepo() *mockAsistenciaRepo {
	return &mockAsistenciaRepo{
		asistencias: make(map[uint]*model.Asistencia),
		pausas:      make(map[uint]*model.Pausa),
	}
}

func (m *mockAsistenciaRepo) Crear(_ context.Context, a *model.Asistencia) error {
	m.accesos++
	if m.forzarDuplicado {
		return gorm.ErrDuplicatedKey
	}
	for _, otra := range m.asistencias {
		if otra.PracticanteID == a.PracticanteID && otra.Fecha == a.Fecha && otra.TurnoID == a.TurnoID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.siguienteID++
	a.ID = m.siguienteID
	m.asistencias[a.ID] = a
	return nil
}

func (m *mockAsistenciaRepo) Actualizar(_ context.Context, a *model.Asistencia) error {
	m.accesos++
	m.asistencias[a.ID] = a
	return nil
}

func (m *mockAsistenciaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Asistencia, error) {
	m.accesos++
	if a, ok := m.asistencias[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAsistenciaRepo) ExistePorTurno(_ context.Context, practicanteID uint, fecha string, turnoID uint) (bool, error) {
	m.accesos++
	if m.forzarDuplicado {
		return false, nil
	}
	for _, a := range m.asistencias {
		if a.PracticanteID == practicanteID && a.Fecha == fecha && a.TurnoID == turnoID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAsistenciaRepo) BuscarAbierta(_ context.Context, practicanteID uint, fecha string) (*model.Asistencia, error) {
	m.accesos++
	for _, a := range m.asistencias {
		if a.PracticanteID == practicanteID && a.Fecha == fecha && a.HoraSalida == nil {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAsistenciaRepo) ObtenerDeFecha(_ context.Context, practicanteID uint, fecha string) (*model.Asistencia, error) {
	m.accesos++
	for _, a := range m.asistencias {
		if a.PracticanteID == practicanteID && a.Fecha == fecha {
			copia := *a
			for _, p := range m.pausas {
				if p.AsistenciaID == a.ID {
					copia.Pausas = append(copia.Pausas, *p)
				}
			}
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAsistenciaRepo) ListarPorAreaYFecha(_ context.Context, areaID uint, fecha string) ([]model.Asistencia, error) {
	m.accesos++
	var lista []model.Asistencia
	for _, a := range m.asistencias {
		if a.Fecha == fecha {
			lista = append(lista, *a)
		}
	}
	return lista, nil
}

func (m *mockAsistenciaRepo) ListarPorMes(_ context.Context, practicanteID uint, mes string, anio string) ([]model.Asistencia, error) {
	m.accesos++
	prefijo := anio + "-" + mes + "-"
	var lista []model.Asistencia
	for _, a := range m.asistencias {
		if a.PracticanteID == practicanteID && len(a.Fecha) >= len(prefijo) && a.Fecha[:len(prefijo)] == prefijo {
			copia := *a
			for _, p := range m.pausas {
				if p.AsistenciaID == a.ID {
					copia.Pausas = append(copia.Pausas, *p)
				}
			}
			lista = append(lista, copia)
		}
	}
	return lista, nil
}

func (m *mockAsistenciaRepo) ContarEntradasDeFecha(_ context.Context, areaID uint, fecha string) (int64, error) {
	vistos := make(map[uint]bool)
	for _, a := range m.asistencias {
		if a.Fecha == fecha {
			vistos[a.PracticanteID] = true
		}
	}
	return int64(len(vistos)), nil
}

func (m *mockAsistenciaRepo) CrearPausa(_ context.Context, p *model.Pausa) error {
	m.accesos++
	m.siguienteID++
	p.ID = m.siguienteID
	m.pausas[p.ID] = p
	return nil
}

func (m *mockAsistenciaRepo) ActualizarPausa(_ context.Context, p *model.Pausa) error {
	m.accesos++
	m.pausas[p.ID] = p
	return nil
}

func (m *mockAsistenciaRepo) ObtenerPausa(_ context.Context, id uint) (*model.Pausa, error) {
	m.accesos++
	if p, ok := m.pausas[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAsistenciaRepo) TienePausaAbierta(_ context.Context, asistenciaID uint) (bool, error) {
	m.accesos++
	for _, p := range m.pausas {
		if p.AsistenciaID == asistenciaID && p.HoraFin == nil {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAsistenciaRepo) ContarPausasAbiertasDeFecha(_ context.Context, areaID uint, fecha string) (int64, error) {
	var count int64
	for _, p := range m.pausas {
		if p.HoraFin == nil {
			count++
		}
	}
	return count, nil
}

func (m *mockAsistenciaRepo) pausasAbiertas(asistenciaID uint) int {
	n := 0
	for _, p := range m.pausas {
		if p.AsistenciaID == asistenciaID && p.HoraFin == nil {
			n++
		}
	}
	return n
}

// ── Mock PracticanteRepository ──

type mockPracticanteRepo struct {
	practicantes map[uint]*model.Practicante
}

func newMockPracticanteRepo() *mockPracticanteRepo {
	return &mockPracticanteRepo{practicantes: make(map[uint]*model.Practicante)}
}

func (m *mockPracticanteRepo) Crear(_ context.Context, p *model.Practicante) error {
	if p.ID == 0 {
		p.ID = uint(len(m.practicantes) + 1)
	}
	for _, otro := range m.practicantes {
		if otro.Matricula == p.Matricula {
			return gorm.ErrDuplicatedKey
		}
	}
	m.practicantes[p.ID] = p
	return nil
}

func (m *mockPracticanteRepo) Actualizar(_ context.Context, p *model.Practicante) error {
	m.practicantes[p.ID] = p
	return nil
}

func (m *mockPracticanteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Practicante, error) {
	if p, ok := m.practicantes[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPracticanteRepo) BuscarPorMatricula(_ context.Context, matricula string) (*model.Practicante, error) {
	for _, p := range m.practicantes {
		if p.Matricula == matricula {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPracticanteRepo) ListarPorArea(_ context.Context, areaID uint) ([]model.Practicante, error) {
	var lista []model.Practicante
	for _, p := range m.practicantes {
		if p.AreaID == areaID {
			lista = append(lista, *p)
		}
	}
	return lista, nil
}

func (m *mockPracticanteRepo) ListarActivos(_ context.Context) ([]model.Practicante, error) {
	var lista []model.Practicante
	for _, p := range m.practicantes {
		if p.IsActive {
			lista = append(lista, *p)
		}
	}
	return lista, nil
}

func (m *mockPracticanteRepo) FechaEntrada(_ context.Context, id uint) (string, error) {
	if p, ok := m.practicantes[id]; ok {
		return p.FechaEntrada, nil
	}
	return "", gorm.ErrRecordNotFound
}

func (m *mockPracticanteRepo) ContarActivosPorArea(_ context.Context, areaID uint) (int64, error) {
	var count int64
	for _, p := range m.practicantes {
		if p.AreaID == areaID && p.IsActive {
			count++
		}
	}
	return count, nil
}

// ── Mock DiaInhabilRepository ──

type mockDiaInhabilRepo struct {
	dias map[string]string // fecha → descripción
}

func newMockDiaInhabilRepo() *mockDiaInhabilRepo {
	return &mockDiaInhabilRepo{dias: make(map[string]string)}
}

func (m *mockDiaInhabilRepo) GetAll(_ context.Context) ([]model.DiaInhabil, error) {
	var lista []model.DiaInhabil
	for fecha, desc := range m.dias {
		lista = append(lista, model.DiaInhabil{Fecha: fecha, Descripcion: desc})
	}
	return lista, nil
}

func (m *mockDiaInhabilRepo) Crear(_ context.Context, d *model.DiaInhabil) error {
	m.dias[d.Fecha] = d.Descripcion
	return nil
}

func (m *mockDiaInhabilRepo) Eliminar(_ context.Context, id uint) error {
	return nil
}

func (m *mockDiaInhabilRepo) EsInhabil(_ context.Context, fecha string) (bool, error) {
	_, ok := m.dias[fecha]
	return ok, nil
}

func (m *mockDiaInhabilRepo) ListarEnRango(_ context.Context, desde, hasta string) ([]model.DiaInhabil, error) {
	var lista []model.DiaInhabil
	for fecha, desc := range m.dias {
		if fecha >= desde && fecha <= hasta {
			lista = append(lista, model.DiaInhabil{Fecha: fecha, Descripcion: desc})
		}
	}
	return lista, nil
}
