package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/utils"
)

// watchSession calls onEnd with a login redirect back to returnPath when the
// session stops being authenticated while the view is alive.
func watchSession(session contracts.SessionState, returnPath string, onEnd func(redirect string)) (stop func()) {
	notifier, ok := session.(contracts.SessionNotifier)
	if !ok {
		return func() {}
	}
	return notifier.Subscribe(func(authenticated bool) {
		if !authenticated {
			onEnd(utils.BuildLoginRedirectURL(returnPath))
		}
	})
}
