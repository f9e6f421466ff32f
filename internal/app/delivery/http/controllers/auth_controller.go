package controllers

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/delivery/http/views"
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/dto/responses"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthClient     contracts.AuthClient
	SessionManager *session.Manager
	Renderer       *views.Renderer
	LoginLimiter   *middlewares.LoginAttemptLimiter
}

func NewAuthController(
	logger *zap.Logger,
	authClient contracts.AuthClient,
	sessionManager *session.Manager,
	renderer *views.Renderer,
	loginLimiter *middlewares.LoginAttemptLimiter,
) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthClient:     authClient,
		SessionManager: sessionManager,
		Renderer:       renderer,
		LoginLimiter:   loginLimiter,
	}
}

func (ctrl *AuthController) Home(w http.ResponseWriter, r *http.Request) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	view := views.NewHomeView(holder)
	defer view.Dispose()
	view.Activate()

	state := view.Store.Get()
	if state.Redirect != "" {
		http.Redirect(w, r, state.Redirect, http.StatusFound)
		return
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, http.StatusOK, views.PageHome, "Home", state)
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	view := views.NewLoginView(ctrl.AuthClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Activate(r.URL.Query().Get(constvars.QueryParamReturnURL))

	state := view.Store.Get()
	if state.Redirect != "" {
		http.Redirect(w, r, state.Redirect, http.StatusFound)
		return
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, http.StatusOK, views.PageLogin, "Login", state)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
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
	request := &requests.LoginUser{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		ReturnURL: r.PostFormValue(constvars.QueryParamReturnURL),
	}

	view := views.NewLoginView(ctrl.AuthClient, holder, ctrl.Log)
	defer view.Dispose()
	view.Submit(r.Context(), request)

	state := view.Store.Get()
	if state.Redirect != "" {
		// The login moved the session to a new id
		cookie, err := ctrl.SessionManager.Cookie(holder)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		http.SetCookie(w, cookie)

		if ctrl.LoginLimiter != nil {
			ctrl.LoginLimiter.Reset(request.Username)
		}
		redirectAfterPost(w, r, state.Redirect)
		return
	}

	status := http.StatusOK
	switch {
	case !state.Valid:
		status = http.StatusBadRequest
	case state.Error:
		status = http.StatusUnauthorized
	}
	renderPage(ctrl.Log, ctrl.Renderer, w, r, holder, status, views.PageLogin, "Login", state)
}

// SessionStatus lets page scripts check the session without following redirects.
func (ctrl *AuthController) SessionStatus(w http.ResponseWriter, r *http.Request) {
	holder, ok := sessionFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	status := responses.SessionStatus{
		Authenticated: holder.IsAuthenticated(),
		Username:      holder.Username(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionStatusSuccessMessage, status)
}
