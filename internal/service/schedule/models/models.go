package models

import (
	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// Request модели

// UpsertTemplateRequest запрос на замену шаблона дня недели
// Отсутствующие поля заменяются значениями по умолчанию
type UpsertTemplateRequest struct {
	StartTime       *string `json:"startTime,omitempty"`       // "09:00"
	EndTime         *string `json:"endTime,omitempty"`         // "18:00"
	IntervalMinutes *int    `json:"intervalMinutes,omitempty"` // Шаг сетки слотов
	Active          *bool   `json:"active,omitempty"`
}

// ToDomainTemplate конвертирует request в domain модель, подставляя дефолты
func (r *UpsertTemplateRequest) ToDomainTemplate(weekday int) *domain.ScheduleTemplate {
	tpl := &domain.ScheduleTemplate{
		Weekday:         weekday,
		StartTime:       types.TimeString(domain.DefaultStartTime),
		EndTime:         types.TimeString(domain.DefaultEndTime),
		IntervalMinutes: domain.DefaultIntervalMinutes,
		Active:          false,
	}

	if r.StartTime != nil {
		tpl.StartTime = types.TimeString(*r.StartTime)
	}
	if r.EndTime != nil {
		tpl.EndTime = types.TimeString(*r.EndTime)
	}
	if r.IntervalMinutes != nil {
		tpl.IntervalMinutes = *r.IntervalMinutes
	}
	if r.Active != nil {
		tpl.Active = *r.Active
	}

	return tpl
}

// Response модели

// TemplateResponse ответ с шаблоном расписания на день недели
type TemplateResponse struct {
	Weekday         int    `json:"weekday"` // 1 = понедельник … 7 = воскресенье
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	IntervalMinutes int    `json:"intervalMinutes"`
	Active          bool   `json:"active"`
}

// TemplateListResponse ответ со списком шаблонов по дням недели
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(tpl *domain.ScheduleTemplate) *TemplateResponse {
	if tpl == nil {
		return nil
	}

	return &TemplateResponse{
		Weekday:         tpl.Weekday,
		StartTime:       tpl.StartTime.String(),
		EndTime:         tpl.EndTime.String(),
		IntervalMinutes: tpl.IntervalMinutes,
		Active:          tpl.Active,
	}
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.ScheduleTemplate) *TemplateListResponse {
	list := make([]TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		list = append(list, *FromDomainTemplate(tpl))
	}
	return &TemplateListResponse{Templates: list}
}
