package utilities

import (
	"testing"
	"time"
)

// terça-feira; a semana corrente vai de domingo 07/09 a sábado 13/09
var today = time.Date(2025, 9, 9, 15, 45, 0, 0, time.Local)

func date(value string) *time.Time {
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestIsOverdue(t *testing.T) {
	cases := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"sem data nunca vence", nil, false},
		{"ontem", date("2025-09-08"), true},
		{"bem no passado", date("2020-01-01"), true},
		{"hoje não está vencida", date("2025-09-09"), false},
		{"amanhã", date("2025-09-10"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(tc.due, today); got != tc.want {
				t.Errorf("IsOverdue(%v) = %v, esperava %v", tc.due, got, tc.want)
			}
		})
	}
}

func TestIsOverdueIgnoresTimeOfDay(t *testing.T) {
	// Vencimento hoje às 00:00 com "agora" às 15:45 não está vencido
	sameDay := time.Date(2025, 9, 9, 0, 0, 0, 0, time.Local)
	if IsOverdue(&sameDay, today) {
		t.Error("comparação deveria ser por dia de calendário, não por instante")
	}
}

func TestIsToday(t *testing.T) {
	if !IsToday(date("2025-09-09"), today) {
		t.Error("mesma data deveria ser hoje")
	}
	if IsToday(date("2025-09-10"), today) {
		t.Error("amanhã não é hoje")
	}
	if IsToday(nil, today) {
		t.Error("data ausente não é hoje")
	}
}

func TestIsThisWeek(t *testing.T) {
	cases := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"sem data", nil, false},
		{"domingo, início da semana", date("2025-09-07"), true},
		{"sábado, fim da semana", date("2025-09-13"), true},
		{"sábado anterior", date("2025-09-06"), false},
		{"domingo seguinte", date("2025-09-14"), false},
		{"hoje", date("2025-09-09"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsThisWeek(tc.due, today); got != tc.want {
				t.Errorf("IsThisWeek(%v) = %v, esperava %v", tc.due, got, tc.want)
			}
		})
	}
}

func TestRelativeDate(t *testing.T) {
	cases := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"sem data", nil, ""},
		{"hoje", date("2025-09-09"), "Today"},
		{"amanhã", date("2025-09-10"), "Tomorrow"},
		{"ontem", date("2025-09-08"), "Yesterday"},
		{"daqui a três dias", date("2025-09-12"), "In 3 days"},
		{"cinco dias atrás", date("2025-09-04"), "5 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeDate(tc.due, today); got != tc.want {
				t.Errorf("RelativeDate(%v) = %q, esperava %q", tc.due, got, tc.want)
			}
		})
	}
}

func TestDaysFromToday(t *testing.T) {
	if got := DaysFromToday(*date("2025-09-12"), today); got != 3 {
		t.Errorf("futuro: %d, esperava 3", got)
	}
	if got := DaysFromToday(*date("2025-09-04"), today); got != -5 {
		t.Errorf("passado: %d, esperava -5", got)
	}
	if got := DaysFromToday(*date("2025-09-09"), today); got != 0 {
		t.Errorf("mesmo dia: %d, esperava 0", got)
	}
}
