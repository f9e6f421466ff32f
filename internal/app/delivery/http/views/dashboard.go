package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type DashboardState struct {
	Username string
	Redirect string
}

type DashboardView struct {
	Store      *Store[DashboardState]
	List       *PatientListView
	authClient contracts.AuthClient
	session    contracts.SessionState
	log        *zap.Logger
	stopWatch  func()
}

func NewDashboardView(
	authClient contracts.AuthClient,
	patientClient contracts.PatientClient,
	session contracts.SessionState,
	logger *zap.Logger,
) *DashboardView {
	v := &DashboardView{
		Store:      NewStore(DashboardState{}),
		List:       NewPatientListView(patientClient, logger),
		authClient: authClient,
		session:    session,
		log:        logger,
	}
	v.stopWatch = watchSession(session, constvars.RouteDashboard, func(redirect string) {
		v.Store.Update(func(state *DashboardState) {
			if state.Redirect == "" {
				state.Redirect = redirect
			}
		})
	})
	return v
}

func (v *DashboardView) Activate(ctx context.Context) {
	username := v.session.Username()
	v.Store.Update(func(state *DashboardState) {
		state.Username = username
	})
	v.List.Activate(ctx)
}

// Logout ends the session locally and always leaves for the home page.
func (v *DashboardView) Logout(ctx context.Context) {
	v.stopWatch()

	err := v.authClient.Logout(ctx, v.session)
	if err != nil {
		v.log.Error(constvars.DiagnosticLogoutFailed,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
	}

	v.Store.Update(func(state *DashboardState) {
		state.Redirect = constvars.RouteHome
	})
}

func (v *DashboardView) Dispose() {
	v.stopWatch()
	v.List.Dispose()
	v.Store.Dispose()
}
