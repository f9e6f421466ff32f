package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

type PatientFormState struct {
	Mode              FormMode
	PatientID         string
	Patient           models.Patient
	ErrorFetching     bool
	ErrorMessage      string
	SubmitFailed      bool
	ValidationMessage string
	Redirect          string
}

func (s PatientFormState) IsEdit() bool {
	return s.Mode == FormModeEdit
}

type PatientFormView struct {
	Store         *Store[PatientFormState]
	patientClient contracts.PatientClient
	session       contracts.SessionState
	log           *zap.Logger
	stopWatch     func()
}

func NewPatientFormView(patientClient contracts.PatientClient, session contracts.SessionState, logger *zap.Logger) *PatientFormView {
	return &PatientFormView{
		Store:         NewStore(PatientFormState{}),
		patientClient: patientClient,
		session:       session,
		log:           logger,
		stopWatch:     func() {},
	}
}

// Prepare selects edit mode when the route carries an id parameter and
// create mode otherwise. It does not fetch.
func (v *PatientFormView) Prepare(routeHasID bool, patientID string) {
	mode := FormModeCreate
	returnPath := constvars.RoutePatient
	if routeHasID {
		mode = FormModeEdit
		returnPath = constvars.RoutePatient + "/" + patientID
	}

	v.stopWatch()
	v.stopWatch = watchSession(v.session, returnPath, func(redirect string) {
		v.Store.Update(func(state *PatientFormState) {
			if state.Redirect == "" {
				state.Redirect = redirect
			}
		})
	})

	v.Store.Update(func(state *PatientFormState) {
		state.Mode = mode
		state.PatientID = patientID
		state.Patient = models.Patient{}
	})
}

// Activate fetches and binds the patient in edit mode. Create mode starts
// from a blank patient without any call.
func (v *PatientFormView) Activate(ctx context.Context) {
	current := v.Store.Get()
	if !current.IsEdit() {
		return
	}

	if current.PatientID == "" {
		v.log.Error(constvars.DiagnosticPatientIDMissing,
			utils.RequestIDField(ctx),
		)
		return
	}

	patient, err := v.patientClient.GetPatientByID(ctx, current.PatientID)
	if err != nil {
		v.log.Error(constvars.DiagnosticPatientFetchFailed,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, current.PatientID),
			zap.Error(err),
		)
		v.Store.Update(func(state *PatientFormState) {
			state.ErrorFetching = true
			state.ErrorMessage = fmt.Sprintf(constvars.ErrClientPatientNotFound, current.PatientID)
		})
		return
	}

	v.Store.Update(func(state *PatientFormState) {
		state.Patient = *patient
	})
}

// Submit updates in edit mode and creates otherwise. On success the form
// holds the server representation and leaves for the dashboard; on failure it
// keeps the submitted values.
func (v *PatientFormView) Submit(ctx context.Context, form *requests.PatientForm) {
	utils.SanitizePatientFormRequest(form)
	current := v.Store.Get()

	submitted := models.Patient{
		ID:          models.PatientID(current.PatientID),
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		BirthDate:   form.BirthDate,
		Gender:      form.Gender,
		PhoneNumber: form.PhoneNumber,
		Address:     form.Address,
	}
	v.Store.Update(func(state *PatientFormState) {
		state.Patient = submitted
		state.SubmitFailed = false
		state.ValidationMessage = ""
	})

	err := utils.ValidateStruct(form)
	if err != nil {
		message := exceptions.FormatFirstValidationError(err)
		v.Store.Update(func(state *PatientFormState) {
			state.ValidationMessage = message
		})
		return
	}

	var (
		saved      *models.Patient
		diagnostic string
	)
	if current.IsEdit() {
		if current.PatientID == "" {
			v.log.Error(constvars.DiagnosticPatientIDMissing,
				utils.RequestIDField(ctx),
			)
			return
		}
		diagnostic = constvars.DiagnosticPatientUpdateFailed
		saved, err = v.patientClient.UpdatePatient(ctx, current.PatientID, &submitted)
	} else {
		diagnostic = constvars.DiagnosticPatientCreateFailed
		saved, err = v.patientClient.CreatePatient(ctx, &submitted)
	}

	if err != nil {
		v.log.Error(diagnostic,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, current.PatientID),
			zap.Error(err),
		)
		v.Store.Update(func(state *PatientFormState) {
			state.SubmitFailed = true
		})
		return
	}

	v.Store.Update(func(state *PatientFormState) {
		state.Patient = *saved
		state.PatientID = saved.ID.String()
		state.Redirect = constvars.RouteDashboard
	})
}

func (v *PatientFormView) Dispose() {
	v.stopWatch()
	v.Store.Dispose()
}
