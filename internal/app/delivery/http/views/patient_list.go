package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type PatientListState struct {
	Patients []models.Patient
	Loaded   bool
}

type PatientListView struct {
	Store         *Store[PatientListState]
	patientClient contracts.PatientClient
	log           *zap.Logger
}

func NewPatientListView(patientClient contracts.PatientClient, logger *zap.Logger) *PatientListView {
	return &PatientListView{
		Store:         NewStore(PatientListState{Patients: []models.Patient{}}),
		patientClient: patientClient,
		log:           logger,
	}
}

// Activate shows the patients in server order. A failed fetch shows an
// empty list.
func (v *PatientListView) Activate(ctx context.Context) {
	patients, err := v.patientClient.ListPatients(ctx)
	if err != nil {
		v.log.Error(constvars.DiagnosticPatientListFetch,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		patients = []models.Patient{}
	}

	v.Store.Update(func(state *PatientListState) {
		state.Patients = patients
		state.Loaded = true
	})
}

func (v *PatientListView) Dispose() {
	v.Store.Dispose()
}
