package views

import (
	"context"
	"errors"
	"testing"

	"clinic-portal/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestPatientListView(t *testing.T) {
	ctx := context.Background()

	t.Run("Shows patients in server order", func(t *testing.T) {
		client := new(mockPatientClient)
		client.On("ListPatients", ctx).Return([]models.Patient{{ID: "b"}, {ID: "a"}}, nil)
		logger, logs := newObservedLogger()

		view := NewPatientListView(client, logger)
		defer view.Dispose()
		view.Activate(ctx)

		state := view.Store.Get()
		assert.True(t, state.Loaded)
		assert.Equal(t, []models.Patient{{ID: "b"}, {ID: "a"}}, state.Patients)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("Failure shows an empty list and logs once", func(t *testing.T) {
		client := new(mockPatientClient)
		client.On("ListPatients", ctx).Return(nil, errors.New("down"))
		logger, logs := newObservedLogger()

		view := NewPatientListView(client, logger)
		defer view.Dispose()
		view.Activate(ctx)

		state := view.Store.Get()
		assert.NotNil(t, state.Patients)
		assert.Empty(t, state.Patients)
		assert.Equal(t, 1, logs.FilterMessage("Error fetching patient data").Len())
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Disposed view ignores a late result", func(t *testing.T) {
		client := new(mockPatientClient)
		client.On("ListPatients", ctx).Return([]models.Patient{{ID: "a"}}, nil)

		view := NewPatientListView(client, newNopLogger())
		view.Dispose()
		view.Activate(ctx)

		assert.False(t, view.Store.Get().Loaded)
		assert.Empty(t, view.Store.Get().Patients)
	})
}
