package controllers

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/views"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log           *zap.Logger
	PatientClient contracts.PatientClient
	Renderer      *views.Renderer
}

func NewPatientController(logger *zap.Logger, patientClient contracts.PatientClient, renderer *views.Renderer) *PatientController {
	return &PatientController{
		Log:           logger,
		PatientClient: patientClient,
		Renderer:      renderer,
	}
}

func (ctrl *PatientController) NewPatientForm(w http.ResponseWriter, r *http.Request) {
	ctrl.showForm(w, r, false, "")
}

func (ctrl *PatientController) EditPatientForm(w http.ResponseWriter, r *http.Request) {
	ctrl.showForm(w, r, true, chi.URLParam(r, constvars.URLParamPatientID))
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ctrl.submitForm(w, r, false, "")
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctrl.submitForm(w, r, true, chi.URLParam(r, constvars.URLParamPatientID))
}

func (ctrl *PatientController) showForm(w http.ResponseWriter, r *http.Request, routeHasID bool, patientID string) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	view := views.NewPatientFormView(ctrl.PatientClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Prepare(routeHasID, patientID)
	view.Activate(r.Context())

	state := view.Store.Get()
	if state.Redirect != "" {
		http.Redirect(w, r, state.Redirect, http.StatusFound)
		return
	}

	status := http.StatusOK
	if state.ErrorFetching {
		status = http.StatusNotFound
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, status, views.PagePatientForm, formTitle(state), state)
}

func (ctrl *PatientController) submitForm(w http.ResponseWriter, r *http.Request, routeHasID bool, patientID string) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	// Bind form to request
	err := r.ParseForm()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.PatientForm{
		FirstName:   r.PostFormValue("firstName"),
		LastName:    r.PostFormValue("lastName"),
		BirthDate:   r.PostFormValue("birthDate"),
		Gender:      r.PostFormValue("gender"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		Address:     r.PostFormValue("address"),
	}

	view := views.NewPatientFormView(ctrl.PatientClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Prepare(routeHasID, patientID)
	view.Submit(r.Context(), request)

	state := view.Store.Get()
	if state.Redirect != "" {
		redirectAfterPost(w, r, state.Redirect)
		return
	}

	status := http.StatusOK
	switch {
	case state.ValidationMessage != "":
		status = http.StatusBadRequest
	case state.SubmitFailed:
		status = http.StatusBadGateway
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, status, views.PagePatientForm, formTitle(state), state)
}

func formTitle(state views.PatientFormState) string {
	if state.IsEdit() {
		return "Edit patient"
	}
	return "New patient"
}
