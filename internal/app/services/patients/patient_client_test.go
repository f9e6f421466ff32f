package patients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedClient(t *testing.T, handler http.HandlerFunc) (*patientClient, *observer.ObservedLogs) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.InfoLevel)
	client := NewPatientClient(server.URL, server.Client(), zap.New(core)).(*patientClient)
	return client, logs
}

func countMessages(logs *observer.ObservedLogs, message string) int {
	return logs.FilterMessage(message).Len()
}

func TestListPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns patients in server order", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`[{"id":"2","firstName":"Bea"},{"id":"1","firstName":"Al"}]`))
		})

		patients, err := client.ListPatients(ctx)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, models.PatientID("2"), patients[0].ID)
		assert.Equal(t, models.PatientID("1"), patients[1].ID)
	})

	t.Run("Numeric ids are read as strings", func(t *testing.T) {
		client, logs := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"firstName":"Ada","lastName":"Lovelace","birthDate":"1815-12-10","gender":"female"}]`))
		})

		patients, err := client.ListPatients(ctx)
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, models.PatientID("1"), patients[0].ID)
		assert.Equal(t, "Ada Lovelace", patients[0].FullName())
		assert.Zero(t, countMessages(logs, "Error fetching patients"))
	})

	t.Run("No content is an empty list", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		patients, err := client.ListPatients(ctx)
		require.NoError(t, err)
		assert.NotNil(t, patients)
		assert.Empty(t, patients)
	})

	t.Run("Server error is logged with the diagnostic", func(t *testing.T) {
		client, logs := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		patients, err := client.ListPatients(ctx)
		assert.Error(t, err)
		assert.Nil(t, patients)
		assert.Equal(t, 1, countMessages(logs, "Error fetching patients"))
	})
}

func TestGetPatientByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the patient", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/42", r.URL.Path)
			w.Write([]byte(`{"id":"42","firstName":"Ada","lastName":"Lovelace","birthDate":"1815-12-10"}`))
		})

		patient, err := client.GetPatientByID(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("42"), patient.ID)
		assert.Equal(t, "Ada Lovelace", patient.FullName())
		assert.Equal(t, "1815-12-10", patient.BirthDate)
	})

	t.Run("Numeric id is read as a string", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":1,"firstName":"Ada","lastName":"Lovelace"}`))
		})

		patient, err := client.GetPatientByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("1"), patient.ID)
	})

	t.Run("Not found maps to a 404 error", func(t *testing.T) {
		client, logs := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		patient, err := client.GetPatientByID(ctx, "42")
		assert.Nil(t, patient)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "The patient with ID 42 could not be found.", customErr.ClientMessage)
		assert.Equal(t, 1, countMessages(logs, "Error fetching patient by ID"))
	})

	t.Run("Malformed body is a decode error", func(t *testing.T) {
		client, logs := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		})

		_, err := client.GetPatientByID(ctx, "42")
		assert.Error(t, err)
		assert.Equal(t, 1, countMessages(logs, "Error fetching patient by ID"))
	})
}

func TestUpdatePatient(t *testing.T) {
	ctx := context.Background()
	submitted := &models.Patient{ID: "7", FirstName: "Grace", LastName: "Hopper", BirthDate: "1906-12-09", Gender: "female"}

	t.Run("Sends the patient with PUT", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/patients/7", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			var received models.Patient
			require.NoError(t, json.Unmarshal(body, &received))
			assert.Equal(t, "Grace", received.FirstName)

			received.Address = "Arlington"
			json.NewEncoder(w).Encode(received)
		})

		updated, err := client.UpdatePatient(ctx, "7", submitted)
		require.NoError(t, err)
		assert.Equal(t, "Arlington", updated.Address)
	})

	t.Run("No content answers the submitted patient", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		updated, err := client.UpdatePatient(ctx, "7", submitted)
		require.NoError(t, err)
		assert.Equal(t, *submitted, *updated)
		assert.NotSame(t, submitted, updated)
	})

	t.Run("Server error is logged with the diagnostic", func(t *testing.T) {
		client, logs := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := client.UpdatePatient(ctx, "7", submitted)
		assert.Error(t, err)
		assert.Equal(t, 1, countMessages(logs, "Error updating patient"))
	})
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the created patient with its id", func(t *testing.T) {
		client, _ := newObservedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/patients", r.URL.Path)
			var received models.Patient
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Empty(t, received.ID)

			received.ID = "99"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(received)
		})

		created, err := client.CreatePatient(ctx, &models.Patient{FirstName: "Alan", LastName: "Turing"})
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("99"), created.ID)
		assert.False(t, created.IsNew())
	})

	t.Run("Transport failure is logged with the diagnostic", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		baseURL := server.URL
		server.Close()

		core, logs := observer.New(zapcore.InfoLevel)
		client := NewPatientClient(baseURL, nil, zap.New(core))

		_, err := client.CreatePatient(ctx, &models.Patient{FirstName: "Alan"})
		assert.Error(t, err)
		assert.Equal(t, 1, logs.FilterMessage("Error creating patient").Len())
	})
}
