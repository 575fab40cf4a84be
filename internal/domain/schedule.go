package domain

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// ScheduleTemplate шаблон рабочего дня для одного дня недели
// Ровно одна запись на каждый день недели (1=понедельник ... 7=воскресенье)
type ScheduleTemplate struct {
	Weekday         int // 1..7, понедельник = 1
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
	Active          bool
}

// IsValidWeekday проверяет, что номер дня недели в диапазоне 1..7
func IsValidWeekday(weekday int) bool {
	return weekday >= WeekdayMonday && weekday <= WeekdaySunday
}

// WeekdayOf возвращает номер дня недели даты в нумерации 1=понедельник ... 7=воскресенье
func WeekdayOf(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 { // time.Sunday = 0
		return WeekdaySunday
	}
	return wd
}
