package utilities

import (
	"fmt"
	"math"
	"time"
)

// Funções de classificação de datas usadas pelos filtros e pelas estatísticas.
// Todas recebem a data de referência ("hoje") como parâmetro explícito, para que
// a lógica seja determinística em testes. Comparações são sempre por dia de
// calendário, ignorando hora.

// DayOf trunca um instante para o início do dia, no fuso local
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// IsOverdue informa se a data de vencimento já passou em relação a hoje.
// Data ausente nunca está vencida.
func IsOverdue(due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}
	return DayOf(*due).Before(DayOf(today))
}

// IsToday informa se a data cai no mesmo dia de calendário que hoje
func IsToday(due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}
	return DayOf(*due).Equal(DayOf(today))
}

// IsThisWeek informa se a data cai na semana corrente, de domingo a sábado,
// em dias de calendário locais
func IsThisWeek(due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}

	startOfWeek := DayOf(today).AddDate(0, 0, -int(today.Weekday()))
	endOfWeek := startOfWeek.AddDate(0, 0, 7)

	day := DayOf(*due)
	return !day.Before(startOfWeek) && day.Before(endOfWeek)
}

// DaysFromToday devolve a diferença em dias de calendário entre a data e hoje,
// positiva para o futuro e negativa para o passado. O arredondamento absorve a
// hora a mais ou a menos de dias com mudança de horário de verão.
func DaysFromToday(due time.Time, today time.Time) int {
	return int(math.Round(DayOf(due).Sub(DayOf(today)).Hours() / 24))
}

// RelativeDate formata a data em relação a hoje: "Today", "Tomorrow",
// "Yesterday", "In N days" ou "N days ago". Data ausente vira string vazia.
func RelativeDate(due *time.Time, today time.Time) string {
	if due == nil {
		return ""
	}

	switch diff := DaysFromToday(*due, today); {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff > 1:
		return fmt.Sprintf("In %d days", diff)
	default:
		return fmt.Sprintf("%d days ago", -diff)
	}
}
