package views

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type LoginState struct {
	Username          string
	ReturnURL         string
	Valid             bool
	ValidationMessage string
	Error             bool
	ErrorMessage      string
	Redirect          string
}

type LoginView struct {
	Store      *Store[LoginState]
	authClient contracts.AuthClient
	session    contracts.SessionState
	log        *zap.Logger
}

func NewLoginView(authClient contracts.AuthClient, session contracts.SessionState, logger *zap.Logger) *LoginView {
	return &LoginView{
		Store:      NewStore(LoginState{}),
		authClient: authClient,
		session:    session,
		log:        logger,
	}
}

// Activate keeps the return URL for the submit and skips the form when the
// session is already authenticated.
func (v *LoginView) Activate(returnURL string) {
	authenticated := v.session.IsAuthenticated()
	v.Store.Update(func(state *LoginState) {
		state.ReturnURL = returnURL
		if authenticated {
			state.Redirect = utils.SanitizeReturnURL(returnURL)
		}
	})
}

// Submit never calls the auth API with an invalid form. A refused or failed
// login leaves the view on the form with the fixed error message.
func (v *LoginView) Submit(ctx context.Context, form *requests.LoginUser) {
	utils.SanitizeLoginUserRequest(form)

	err := utils.ValidateStruct(form)
	if err != nil {
		message := exceptions.FormatFirstValidationError(err)
		v.Store.Update(func(state *LoginState) {
			state.Username = form.Username
			state.ReturnURL = form.ReturnURL
			state.Valid = false
			state.ValidationMessage = message
		})
		return
	}

	v.Store.Update(func(state *LoginState) {
		state.Username = form.Username
		state.ReturnURL = form.ReturnURL
		state.Valid = true
		state.ValidationMessage = ""
	})

	credentials := models.Credentials{
		Username: form.Username,
		Password: form.Password,
	}
	ok, err := v.authClient.Login(ctx, v.session, credentials)
	if err != nil {
		v.log.Error(constvars.DiagnosticLoginFailed,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingUsernameKey, form.Username),
			zap.Error(err),
		)
	}

	if err != nil || !ok {
		v.Store.Update(func(state *LoginState) {
			state.Error = true
			state.ErrorMessage = constvars.ErrClientInvalidUsernameOrPassword
		})
		return
	}

	v.Store.Update(func(state *LoginState) {
		state.Error = false
		state.ErrorMessage = ""
		state.Redirect = utils.SanitizeReturnURL(form.ReturnURL)
	})
}

func (v *LoginView) Dispose() {
	v.Store.Dispose()
}
