package catalogo

import (
	"testing"

	"sipra-backend/internal/apperror"
)

func TestPorDefecto(t *testing.T) {
	c := PorDefecto()

	manana, err := c.Obtener(1)
	if err != nil {
		t.Fatalf("el turno 1 debe existir: %v", err)
	}
	if manana.Nombre != "Mañana" || manana.HoraInicio != "08:00:00" || manana.HoraFin != "13:15:00" {
		t.Errorf("turno matutino inesperado: %+v", manana)
	}

	tarde, err := c.Obtener(2)
	if err != nil {
		t.Fatalf("el turno 2 debe existir: %v", err)
	}
	if tarde.Nombre != "Tarde" || tarde.HoraInicio != "11:15:00" || tarde.HoraFin != "16:30:00" {
		t.Errorf("turno vespertino inesperado: %+v", tarde)
	}
}

func TestExiste(t *testing.T) {
	c := PorDefecto()

	if !c.Existe(1) || !c.Existe(2) {
		t.Error("los turnos del catálogo por defecto deben existir")
	}
	if c.Existe(0) || c.Existe(3) {
		t.Error("un ID fuera del catálogo no debe existir")
	}
}

func TestObtenerInexistente(t *testing.T) {
	c := PorDefecto()

	_, err := c.Obtener(9)
	if !apperror.Es(err, apperror.TipoNoEncontrado) {
		t.Fatalf("se esperaba no encontrado, se obtuvo: %v", err)
	}
}

func TestListaOrdenada(t *testing.T) {
	c := Nuevo(
		Turno{ID: 3, Nombre: "Nocturno", HoraInicio: "18:00:00", HoraFin: "22:00:00"},
		Turno{ID: 1, Nombre: "Mañana", HoraInicio: "08:00:00", HoraFin: "13:15:00"},
	)

	lista := c.Lista()
	if len(lista) != 2 {
		t.Fatalf("se esperaban 2 turnos, hay %d", len(lista))
	}
	if lista[0].ID != 1 || lista[1].ID != 3 {
		t.Errorf("la lista debe venir ordenada por ID: %+v", lista)
	}
}
