package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/AgendaPro-Service/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) CreateAppointmentResponse {
	t.Helper()
	var resp CreateAppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

const validBody = `{"name":"Ana García","email":"ana@example.com","date":"2026-03-02","time":"10:00"}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{ID: 1}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Ana García", uc.gotReq.Name)
	assert.Equal(t, "10:00", uc.gotReq.Time.String())
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{"name":"Ana","email":"ana@example.com","date":"02/03/2026","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fecha inválida")
}

func TestHandle_MalformedTime(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{"name":"Ana","email":"ana@example.com","date":"2026-03-02","time":"10am"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Horario inválido")
}

func TestHandle_PastDate(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrPastDate}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody)

	// Бизнес-отказ — это 200 с success=false
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "No se aceptan fechas pasadas", resp.Error)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotTaken}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Horario ya reservado", resp.Error)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrInvalidInput}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"name":"","email":"","date":"2026-03-02","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("connection refused")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody)

	// Внутренний сбой не раскрывается: клиент видит общий отказ
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Error al agendar", resp.Error)
}
