package controllers

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/views"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log           *zap.Logger
	AuthClient    contracts.AuthClient
	PatientClient contracts.PatientClient
	Renderer      *views.Renderer
}

func NewDashboardController(
	logger *zap.Logger,
	authClient contracts.AuthClient,
	patientClient contracts.PatientClient,
	renderer *views.Renderer,
) *DashboardController {
	return &DashboardController{
		Log:           logger,
		AuthClient:    authClient,
		PatientClient: patientClient,
		Renderer:      renderer,
	}
}

func (ctrl *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	view := views.NewDashboardView(ctrl.AuthClient, ctrl.PatientClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Activate(r.Context())

	state := view.Store.Get()
	if state.Redirect != "" {
		http.Redirect(w, r, state.Redirect, http.StatusFound)
		return
	}

	page := views.DashboardPage{
		Dashboard: state,
		List:      view.List.Store.Get(),
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, http.StatusOK, views.PageDashboard, "Dashboard", page)
}

func (ctrl *DashboardController) Logout(w http.ResponseWriter, r *http.Request) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	view := views.NewDashboardView(ctrl.AuthClient, ctrl.PatientClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Logout(r.Context())

	redirectAfterPost(w, r, view.Store.Get().Redirect)
}
