package update_schedule

// UpdateScheduleResponse HTTP response model
type UpdateScheduleResponse struct {
	Success bool `json:"success"`
}
