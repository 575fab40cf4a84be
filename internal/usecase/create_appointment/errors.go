package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastDate возвращается при попытке записаться на прошедшую дату
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
