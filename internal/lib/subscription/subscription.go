// Package subscription содержит чистые функции расчёта абонемента:
// дату окончания по дате начала и сроку, и статус по дате окончания.
// Функции не обращаются к часам и хранилищу, текущая дата передаётся
// параметром.
package subscription

import (
	"time"
)

// Статусы абонемента клиента.
const (
	StatusActive   = "ACTIVE"
	StatusDueToday = "DUE_TODAY"
	StatusExpired  = "EXPIRED"
)

// MonthDuration сентинельное значение срока: 30 означает
// "один календарный месяц", а не тридцать дней.
const MonthDuration = 30

// EndDate считает дату окончания абонемента.
//
// Для срока MonthDuration берётся то же число следующего календарного
// месяца; если такого числа в нём нет (например, старт 31 января),
// дата прижимается к последнему дню месяца. Декабрь переходит в январь
// следующего года. Для любого другого срока d дата окончания равна
// start + (d-1) дней: недельный абонемент со стартом в понедельник
// заканчивается в воскресенье.
//
// Функция всегда успешна для положительного срока, валидация входа —
// обязанность вызывающего.
func EndDate(start time.Time, duration int) time.Time {
	if duration != MonthDuration {
		return start.AddDate(0, 0, duration-1)
	}

	year, month := start.Year(), start.Month()+1
	if month > time.December {
		month = time.January
		year++
	}

	day := start.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, start.Location())
}

// Status возвращает статус абонемента по дате окончания и текущей дате.
// Сравниваются только календарные даты, время суток не учитывается.
func Status(end, today time.Time) string {
	e := truncateToDay(end)
	t := truncateToDay(today)

	switch {
	case e.Before(t):
		return StatusExpired
	case e.Equal(t):
		return StatusDueToday
	default:
		return StatusActive
	}
}

// daysIn возвращает число дней в месяце. Нулевой день следующего
// месяца нормализуется в последний день текущего.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
