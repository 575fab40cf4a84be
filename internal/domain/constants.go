package domain

import "github.com/m04kA/AgendaPro-Service/pkg/types"

// Дни недели (понедельник = 1, воскресенье = 7)
const (
	WeekdayMonday = 1
	WeekdaySunday = 7
)

// Дефолтные значения шаблона расписания
// Используются при первичном заполнении и при частичном PUT
const (
	DefaultStartTime       = types.TimeString("09:00")
	DefaultEndTime         = types.TimeString("18:00")
	DefaultWeekendStart    = types.TimeString("10:00")
	DefaultWeekendEnd      = types.TimeString("14:00")
	DefaultIntervalMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
