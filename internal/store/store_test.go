package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// fakeCloud implementa cloud.DocumentStore com funções configuráveis.
// Campos nil caem na implementação em memória.
type fakeCloud struct {
	mu   sync.Mutex
	docs map[string]map[string][]byte

	saveFn   func(ctx context.Context, collection, id string, doc []byte) error
	getFn    func(ctx context.Context, collection, id string) ([]byte, error)
	getAllFn func(ctx context.Context, collection string) ([][]byte, error)
	deleteFn func(ctx context.Context, collection, id string) error
	pingFn   func(ctx context.Context) error
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{docs: map[string]map[string][]byte{}}
}

func (f *fakeCloud) SaveDocument(ctx context.Context, collection, id string, doc []byte) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, collection, id, doc)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs[collection] == nil {
		f.docs[collection] = map[string][]byte{}
	}
	f.docs[collection][id] = append([]byte{}, doc...)
	return nil
}

func (f *fakeCloud) GetDocument(ctx context.Context, collection, id string) ([]byte, error) {
	if f.getFn != nil {
		return f.getFn(ctx, collection, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[collection][id]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, doc...), nil
}

func (f *fakeCloud) GetAllDocuments(ctx context.Context, collection string) ([][]byte, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, collection)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := [][]byte{}
	for _, doc := range f.docs[collection] {
		out = append(out, append([]byte{}, doc...))
	}
	return out, nil
}

func (f *fakeCloud) DeleteDocument(ctx context.Context, collection, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, collection, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs[collection], id)
	return nil
}

func (f *fakeCloud) Ping(ctx context.Context) error {
	if f.pingFn != nil {
		return f.pingFn(ctx)
	}
	return nil
}

func newTestStore(cloud *fakeCloud) *Store {
	if cloud == nil {
		return New(nil, time.Second, zap.NewNop(), nil)
	}
	return New(cloud, time.Second, zap.NewNop(), nil)
}

// ======================================================
// SAVE
// ======================================================

func TestSaveRequiresID(t *testing.T) {
	st := newTestStore(nil)

	_, err := st.Save(context.Background(), Clients, &models.Client{FullName: "Ana"})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestSaveStampsTimestamps(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	saved, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)
	require.False(t, saved.CreatedAt.IsZero())
	require.False(t, saved.UpdatedAt.IsZero())

	created := saved.CreatedAt

	// segunda gravação preserva createdAt e move updatedAt
	time.Sleep(5 * time.Millisecond)
	again, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana Maria"})
	require.NoError(t, err)

	assert.Equal(t, created.Unix(), again.CreatedAt.Unix())
	assert.True(t, again.UpdatedAt.After(created) || again.UpdatedAt.Equal(created))
}

func TestSaveMirrorsLocallyWhenRemoteFails(t *testing.T) {
	cloud := newFakeCloud()
	cloud.saveFn = func(ctx context.Context, collection, id string, doc []byte) error {
		return errors.New("connection refused")
	}
	st := newTestStore(cloud)
	ctx := context.Background()

	saved, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})

	require.NoError(t, err, "falha remota não pode falhar a gravação")
	require.NotNil(t, saved)
	assert.True(t, st.Degraded())

	// o registro sobrevive no cache local
	got := st.GetClient(ctx, "cli_1")
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.FullName)
}

// ======================================================
// LEITURA REMOTO-PRIMEIRO
// ======================================================

func TestGetAllRemoteIsAuthoritative(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)

	// outro dispositivo remove o documento direto no remoto
	cloud.mu.Lock()
	delete(cloud.docs[string(Clients)], "cli_1")
	cloud.mu.Unlock()

	clients := st.GetClients(ctx)

	assert.Empty(t, clients, "snapshot remoto sobrescreve o cache local")
}

func TestGetAllFallsBackToLocalCache(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)

	cloud.getAllFn = func(ctx context.Context, collection string) ([][]byte, error) {
		return nil, errors.New("timeout")
	}

	clients := st.GetClients(ctx)

	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].FullName)
	assert.True(t, st.Degraded())
}

func TestDegradedRecoversWhenRemoteReturns(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	_, _ = st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})

	cloud.getAllFn = func(ctx context.Context, collection string) ([][]byte, error) {
		return nil, errors.New("timeout")
	}
	st.GetClients(ctx)
	require.True(t, st.Degraded())

	cloud.getAllFn = nil
	st.GetClients(ctx)
	assert.False(t, st.Degraded())
}

// Um snapshot remoto capturado antes de uma gravação local não pode
// apagá-la: o agendamento recém-salvo precisa continuar visível para a
// checagem de conflito, senão duas reservas sobrepostas passam.
func TestStaleSnapshotKeepsConflictCheckBase(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	// a chamada remota está em voo quando a gravação local acontece:
	// o snapshot vazio que ela devolve é mais velho que a escrita
	cloud.getAllFn = func(ctx context.Context, collection string) ([][]byte, error) {
		_, err := st.SaveAppointment(context.Background(), &models.Appointment{
			ID:              "apt_1",
			ClientID:        "cli_1",
			ProfessionalID:  "pro_1",
			StartTime:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          "agendado",
			Services: []models.ServiceSelection{
				{ServiceID: "srv_1", Name: "Banho", AppliedPrice: 50},
			},
		})
		require.NoError(t, err)
		return [][]byte{}, nil
	}

	st.GetAll(ctx, Appointments)

	existing := st.GetAppointmentsByProfessional("pro_1")
	require.Len(t, existing, 1, "snapshot obsoleto não pode apagar a gravação local")
	assert.Equal(t, "apt_1", existing[0].ID)

	// um snapshot novo, capturado depois da gravação, volta a mandar
	cloud.getAllFn = nil
	st.GetAll(ctx, Appointments)
	assert.Len(t, st.GetAppointmentsByProfessional("pro_1"), 1)
}

// A mesma corrida na exclusão: o snapshot velho não ressuscita um
// documento removido localmente durante a ida e volta remota.
func TestStaleSnapshotDoesNotResurrectDeleted(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)

	snapshot := [][]byte{[]byte(`{"id":"cli_1","nomeCompleto":"Ana"}`)}
	cloud.getAllFn = func(ctx context.Context, collection string) ([][]byte, error) {
		st.Delete(context.Background(), Clients, "cli_1")
		return snapshot, nil
	}

	clients := st.GetClients(ctx)

	assert.Empty(t, clients)
}

func TestPingReportsStorageDegraded(t *testing.T) {
	cloud := newFakeCloud()
	cloud.pingFn = func(ctx context.Context) error {
		return errors.New("connection refused")
	}
	st := newTestStore(cloud)

	err := st.Ping(context.Background())

	require.Error(t, err)
	var degraded *apperr.StorageDegradedError
	require.ErrorAs(t, err, &degraded)
	assert.Equal(t, "ping", degraded.Op)
	assert.True(t, st.Degraded())

	// remoto de volta: o aviso some e a flag cai
	cloud.pingFn = nil
	require.NoError(t, st.Ping(context.Background()))
	assert.False(t, st.Degraded())
}

func TestPingWithoutBackendIsDegraded(t *testing.T) {
	st := newTestStore(nil)

	err := st.Ping(context.Background())

	var degraded *apperr.StorageDegradedError
	require.ErrorAs(t, err, &degraded)
}

func TestGetByIDAbsentIsNotError(t *testing.T) {
	st := newTestStore(newFakeCloud())

	got := st.GetClient(context.Background(), "cli_nope")

	assert.Nil(t, got)
}

func TestReadsReturnIndependentCopies(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)

	a := st.GetClient(ctx, "cli_1")
	a.FullName = "mutado"

	b := st.GetClient(ctx, "cli_1")
	assert.Equal(t, "Ana", b.FullName, "mutação de uma leitura não vaza para outra")
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteIsIdempotent(t *testing.T) {
	st := newTestStore(newFakeCloud())
	ctx := context.Background()

	_, err := st.SaveClient(ctx, &models.Client{ID: "cli_1", FullName: "Ana"})
	require.NoError(t, err)

	assert.True(t, st.Delete(ctx, Clients, "cli_1"))
	assert.False(t, st.Delete(ctx, Clients, "cli_1"), "segunda exclusão não encontra nada")
	assert.Nil(t, st.GetClient(ctx, "cli_1"))
}

// ======================================================
// QUERY E IDS
// ======================================================

func TestQueryFiltersLocalSnapshot(t *testing.T) {
	st := newTestStore(nil)
	ctx := context.Background()

	for _, c := range []models.Client{
		{ID: "cli_1", FullName: "Ana", Status: "ativo"},
		{ID: "cli_2", FullName: "Bruno", Status: "inativo"},
		{ID: "cli_3", FullName: "Carla", Status: "ativo"},
	} {
		c := c
		_, err := st.SaveClient(ctx, &c)
		require.NoError(t, err)
	}

	active := st.Query(Clients, func(r Record) bool {
		return r.(*models.Client).Status == "ativo"
	})

	assert.Len(t, active, 2)
}

func TestGenerateIDFormat(t *testing.T) {
	st := newTestStore(nil)

	id := st.GenerateID("apt")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "apt", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 8)

	// ids consecutivos nunca colidem
	assert.NotEqual(t, id, st.GenerateID("apt"))
}

func TestDecodeSkipsCorruptedDocuments(t *testing.T) {
	cloud := newFakeCloud()
	cloud.getAllFn = func(ctx context.Context, collection string) ([][]byte, error) {
		return [][]byte{
			[]byte(`{"id":"cli_1","nomeCompleto":"Ana"}`),
			[]byte(`{{{not json`),
		}, nil
	}
	st := newTestStore(cloud)

	clients := st.GetClients(context.Background())

	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].FullName)
}

func TestSaveSerializesPortugueseWireFormat(t *testing.T) {
	cloud := newFakeCloud()
	st := newTestStore(cloud)
	ctx := context.Background()

	_, err := st.SaveAppointment(ctx, &models.Appointment{
		ID:        "apt_1",
		ClientID:  "cli_1",
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Services: []models.ServiceSelection{
			{ServiceID: "srv_1", Name: "Banho", AppliedPrice: 50},
		},
		DurationMinutes: 60,
		Status:          "agendado",
	})
	require.NoError(t, err)

	cloud.mu.Lock()
	raw := cloud.docs[string(Appointments)]["apt_1"]
	cloud.mu.Unlock()

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "clienteId")
	assert.Contains(t, doc, "dataHora")
	assert.Contains(t, doc, "duracaoMinutos")
	assert.Contains(t, doc, "servicosSelecionados")
}
