package cancel_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AgendaPro-Service/internal/service/appointments"
)

type fakeService struct {
	err   error
	gotID int64
}

func (f *fakeService) Cancel(_ context.Context, id int64) error {
	f.gotID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, id string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/admin/appointments/{id}/cancel", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/appointments/"+id+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, int64(7), svc.gotID)
}

func TestHandle_NonNumericID(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := doRequest(t, h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidInput}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "0")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
