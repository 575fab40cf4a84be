package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of 24h range")
)

// TimeString время суток в формате "HH:MM" (например, "09:30")
// Используется для хранения и сравнения времени слотов без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM" и диапазон значений
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// minutes возвращает время как количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, string(t))
	}

	return hours*60 + mins, nil
}

// AddMinutes возвращает время, сдвинутое на delta минут вперёд
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}

	total += delta
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, string(t), delta)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
// Некорректные значения считаются "не раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Scan реализует sql.Scanner
// PostgreSQL TIME приходит из драйвера как time.Time, строка или []byte ("HH:MM:SS")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

// scanString обрезает секунды ("09:00:00" -> "09:00") и валидирует
func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
