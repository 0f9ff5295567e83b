package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/notify"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	ucappointment "github.com/petcarebr/petshop-scheduler/internal/usecase/appointment"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(nil, time.Second, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana", WhatsApp: "11999990000"})
	require.NoError(t, err)
	_, err = st.SavePet(ctx, &models.Pet{ID: "pet_1", ClientID: "cli_1", Name: "Rex", Species: "cão"})
	require.NoError(t, err)
	_, err = st.SaveProfessional(ctx, &models.Professional{ID: "pro_1", Name: "Carla", Active: true})
	require.NoError(t, err)
	_, err = st.SaveService(ctx, &models.Service{ID: "srv_banho", Name: "Banho", BasePrice: 50, DurationMinutes: 60, Active: true})
	require.NoError(t, err)

	locks := ucappointment.NewCalendarLocks()
	notifier := notify.NewDispatcher(zap.NewNop(), 16)
	t.Cleanup(notifier.Close)

	upcoming := ucappointment.NewGetUpcomingAppointments(st)

	h := NewAppointmentHandler(
		st,
		ucappointment.NewCreateAppointment(st, locks, nil),
		ucappointment.NewUpdateAppointment(st, locks),
		ucappointment.NewCancelAppointment(st),
		ucappointment.NewConfirmAppointment(st, notifier),
		ucappointment.NewStartAppointment(st),
		ucappointment.NewCompleteAppointment(st),
		ucappointment.NewListAppointments(st),
		ucappointment.NewGetAvailability(st, ucappointment.DefaultBusinessHours()),
		ucappointment.NewGetAppointmentStats(st),
		upcoming,
		ucappointment.NewGetCalendarMonth(st),
		ucappointment.NewCheckReminders(st, upcoming, notifier, nil),
		"UTC",
	)

	r := gin.New()
	r.POST("/api/appointments", h.Create)
	r.GET("/api/appointments", h.List)
	r.GET("/api/appointments/availability", h.Availability)
	r.GET("/api/appointments/:id", h.Get)
	r.POST("/api/appointments/:id/cancel", h.Cancel)

	return r, st
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody(start time.Time) gin.H {
	return gin.H{
		"clienteId":      "cli_1",
		"petId":          "pet_1",
		"profissionalId": "pro_1",
		"dataHora":       start.Format(time.RFC3339),
		"servicosSelecionados": []gin.H{
			{"serviceId": "srv_banho", "nome": "Banho", "precoAplicado": 50},
		},
	}
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	w := postJSON(r, "/api/appointments", validCreateBody(start))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.Equal(t, "agendado", ap.Status)
	assert.Equal(t, "Ana", ap.ClientName)
}

func TestCreateAppointmentEndpointConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/appointments", validCreateBody(start)).Code)

	w := postJSON(r, "/api/appointments", validCreateBody(start.Add(30*time.Minute)))

	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "time_conflict", body["error_code"])
}

func TestCreateAppointmentEndpointMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/api/appointments", gin.H{"clienteId": "cli_1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelEndpointFreesSlot(t *testing.T) {
	r, _ := newTestRouter(t)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	created := postJSON(r, "/api/appointments", validCreateBody(start))
	require.Equal(t, http.StatusCreated, created.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &ap))

	cancel := postJSON(r, "/api/appointments/"+ap.ID+"/cancel", gin.H{"motivo": "cliente desmarcou"})
	require.Equal(t, http.StatusOK, cancel.Code)

	again := postJSON(r, "/api/appointments", validCreateBody(start))
	assert.Equal(t, http.StatusCreated, again.Code, "cancelamento libera o intervalo")
}

func TestAvailabilityEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	date := time.Now().Add(72 * time.Hour).Format("2006-01-02")
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/availability?profissionalId=pro_1&data="+date+"&duracao=60", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.Total)
}
