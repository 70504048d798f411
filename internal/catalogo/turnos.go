// Package catalogo mantiene el catálogo estático de turnos. Se carga una
// sola vez al arrancar el proceso y es inmutable durante su vida.
package catalogo

import (
	"fmt"
	"sort"

	"sipra-backend/internal/apperror"
)

type Turno struct {
	ID         uint   `json:"id"`
	Nombre     string `json:"nombre"`
	HoraInicio string `json:"hora_inicio"` // formato HH:MM:SS
	HoraFin    string `json:"hora_fin"`
}

type Catalogo struct {
	turnos map[uint]Turno
}

// Nuevo arma un catálogo a partir de los turnos dados.
func Nuevo(turnos ...Turno) *Catalogo {
	m := make(map[uint]Turno, len(turnos))
	for _, t := range turnos {
		m[t.ID] = t
	}
	return &Catalogo{turnos: m}
}

// PorDefecto regresa el catálogo con los dos turnos operativos del programa
// de prácticas: matutino y vespertino.
func PorDefecto() *Catalogo {
	return Nuevo(
		Turno{ID: 1, Nombre: "Mañana", HoraInicio: "08:00:00", HoraFin: "13:15:00"},
		Turno{ID: 2, Nombre: "Tarde", HoraInicio: "11:15:00", HoraFin: "16:30:00"},
	)
}

func (c *Catalogo) Existe(id uint) bool {
	_, ok := c.turnos[id]
	return ok
}

func (c *Catalogo) Obtener(id uint) (Turno, error) {
	t, ok := c.turnos[id]
	if !ok {
		return Turno{}, apperror.NoEncontrado(fmt.Sprintf("El turno %d no existe en el catálogo", id))
	}
	return t, nil
}

// Lista regresa los turnos ordenados por ID.
func (c *Catalogo) Lista() []Turno {
	lista := make([]Turno, 0, len(c.turnos))
	for _, t := range c.turnos {
		lista = append(lista, t)
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].ID < lista[j].ID })
	return lista
}
