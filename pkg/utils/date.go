package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD. A string vazia é
// rejeitada: todos os chamadores tratam a data como parâmetro obrigatório.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("data não informada")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// WeekStart retorna a segunda-feira da semana que contém a data de referência
func WeekStart(ref time.Time) time.Time {
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	// time.Weekday coloca domingo em 0; recuar até a segunda-feira mais recente
	offset := (int(ref.Weekday()) + 6) % 7
	return ref.AddDate(0, 0, -offset)
}

// WeekEnd retorna o domingo da semana que contém a data de referência
func WeekEnd(ref time.Time) time.Time {
	return WeekStart(ref).AddDate(0, 0, 6)
}

// MonthBounds retorna o primeiro e o último dia do mês informado
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DaysBetween conta os dias entre as duas datas, inclusivo nas duas pontas
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateRange gera todas as datas do período, em ordem ascendente
func DateRange(start, end time.Time) []time.Time {
	dates := make([]time.Time, 0, DaysBetween(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
