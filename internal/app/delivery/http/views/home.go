package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/constvars"
)

type HomeState struct {
	Authenticated bool
	Redirect      string
}

type HomeView struct {
	Store   *Store[HomeState]
	session contracts.SessionState
}

func NewHomeView(session contracts.SessionState) *HomeView {
	return &HomeView{
		Store:   NewStore(HomeState{}),
		session: session,
	}
}

// Activate sends an authenticated session to the dashboard and shows the
// login prompt otherwise.
func (v *HomeView) Activate() {
	authenticated := v.session.IsAuthenticated()
	v.Store.Update(func(state *HomeState) {
		state.Authenticated = authenticated
		if authenticated {
			state.Redirect = constvars.RouteDashboard
		}
	})
}

func (v *HomeView) Dispose() {
	v.Store.Dispose()
}
