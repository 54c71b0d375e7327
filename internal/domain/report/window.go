package report

import (
	"fmt"
	"time"

	"github.com/stocktrackr/stocktrackr-api/internal/domain"
)

// Window identifica la ventana de tiempo de un resumen de ingresos.
type Window string

const (
	// WindowLast7Days es una ventana rodante de 168 horas que termina en
	// "now"; no está alineada a días calendario.
	WindowLast7Days Window = "7d"

	// WindowLastMonth retrocede un mes calendario desde "now" manteniendo el
	// día del mes (ver oneMonthBack para la política de desborde).
	WindowLastMonth Window = "month"

	// WindowAllTime no acota: entran todas las ventas.
	WindowAllTime Window = "all"

	// WindowCurrentMonth es el mes calendario en curso (mismo mes y año que
	// "now"). Es la ventana del dashboard; no es un valor aceptado por
	// ParseWindow para el parámetro window del reporte.
	WindowCurrentMonth Window = "current_month"
)

// ParseWindow convierte el parámetro de query en una ventana.
// Vacío equivale a "all"; cualquier otro valor es domain.ErrInvalidInput.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", string(WindowAllTime):
		return WindowAllTime, nil
	case string(WindowLast7Days):
		return WindowLast7Days, nil
	case string(WindowLastMonth):
		return WindowLastMonth, nil
	}
	return "", fmt.Errorf("%w: ventana desconocida %q (valores: 7d, month, all)", domain.ErrInvalidInput, s)
}

// LowerBound calcula el límite inferior de la ventana respecto a "now"
// (parámetro explícito: nada lee el reloj ambiente). bounded=false significa
// ventana sin límite (all time). El límite superior nunca se acota: una venta
// con timestamp futuro entra igual, como en el comportamiento observado.
func (w Window) LowerBound(now time.Time) (lower time.Time, bounded bool) {
	switch w {
	case WindowLast7Days:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowLastMonth:
		return oneMonthBack(now), true
	default:
		return time.Time{}, false
	}
}

// oneMonthBack retrocede un mes calendario manteniendo el día del mes y la
// hora. Política de desborde elegida: si el mes destino es más corto, el día
// se recorta al último día de ese mes (31 mar → 28/29 feb, 31 ene → 31 dic).
// Se implementa a mano porque time.AddDate normaliza el desborde hacia
// adelante (31 mar − 1 mes = 2/3 mar), lo que encogería la ventana.
func oneMonthBack(now time.Time) time.Time {
	year, month, day := now.Date()
	// Primer día del mes anterior, para obtener año/mes destino sin normalización
	prev := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	if last := daysIn(prev.Year(), prev.Month(), now.Location()); day > last {
		day = last
	}
	return time.Date(prev.Year(), prev.Month(), day,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

// daysIn devuelve cuántos días tiene el mes dado.
func daysIn(year int, month time.Month, loc *time.Location) int {
	// Día 0 del mes siguiente == último día de este mes
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// SameCalendarDay indica si dos instantes caen en el mismo día calendario de
// la zona horaria dada (día/mes/año, ignorando la hora).
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// SameCalendarMonth indica si dos instantes caen en el mismo mes calendario de
// la zona horaria dada (mes/año, ignorando el día y la hora). Es el criterio
// del dashboard para "el mes en curso": el 20 de agosto, una venta del 25 de
// julio queda fuera aunque esté a menos de un mes de distancia.
func SameCalendarMonth(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, _ := a.In(loc).Date()
	by, bm, _ := b.In(loc).Date()
	return ay == by && am == bm
}
