package controllers

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/views"
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var errSessionMissing = errors.New("session holder missing from request context")

// sessionFromRequest answers an error response itself when the session
// middleware did not run.
func sessionFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request) (contracts.SessionState, bool) {
	holder, found := session.FromContext(r.Context())
	if !found {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerProcess(errSessionMissing))
		return nil, false
	}
	return holder, true
}

func renderPage(
	log *zap.Logger,
	renderer *views.Renderer,
	w http.ResponseWriter,
	r *http.Request,
	holder contracts.SessionState,
	status int,
	page string,
	title string,
	state interface{},
) {
	data := views.Page{
		Title: title,
		Session: views.SessionSummary{
			Authenticated: holder.IsAuthenticated(),
			Username:      holder.Username(),
		},
		State: state,
	}

	err := renderer.Render(w, status, page, data)
	if err != nil {
		log.Error("controllers.renderPage error rendering page",
			utils.RequestIDField(r.Context()),
			zap.String(constvars.LoggingViewKey, page),
			zap.Error(err),
		)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, http.StatusInternalServerError)
	}
}

// redirectAfterPost uses 303 so the browser follows with a GET.
func redirectAfterPost(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
