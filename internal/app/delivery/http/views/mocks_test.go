package views

import (
	"context"
	"testing"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/utils"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockPatientClient struct {
	mock.Mock
}

func (m *mockPatientClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientClient) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientClient) UpdatePatient(ctx context.Context, patientID string, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patientID, patient)
	if fn, ok := args.Get(0).(func(context.Context, string, *models.Patient) *models.Patient); ok {
		return fn(ctx, patientID, patient), args.Error(1)
	}
	updated, _ := args.Get(0).(*models.Patient)
	return updated, args.Error(1)
}

func (m *mockPatientClient) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	created, _ := args.Get(0).(*models.Patient)
	return created, args.Error(1)
}

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) Login(ctx context.Context, state contracts.SessionState, credentials models.Credentials) (bool, error) {
	args := m.Called(ctx, state, credentials)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthClient) Logout(ctx context.Context, state contracts.SessionState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

const testSecret = "0123456789abcdef0123456789abcdef"

// newTestHolder returns a real session holder backed by the in-memory store.
func newTestHolder(t *testing.T, authenticated bool) *session.Holder {
	t.Helper()
	sealer, err := utils.NewTokenSealer(testSecret)
	require.NoError(t, err)
	manager := session.NewManager(zap.NewNop(), session.NewMemorySessionStore(0), sealer, testSecret, 1, false)

	holder, _, err := manager.Load(context.Background(), "")
	require.NoError(t, err)
	if authenticated {
		require.NoError(t, holder.MarkAuthenticated(context.Background(), "user", "dXNlcjp1c2Vy"))
	}
	return holder
}

func newNopLogger() *zap.Logger {
	return zap.NewNop()
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}
