package auth

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/responses"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authClient struct {
	CheckURL   string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewAuthClient talks to the auth API without the request decorator; the
// basic token it sends is the one being verified.
func NewAuthClient(baseURL, checkPath string, httpClient *http.Client, logger *zap.Logger) contracts.AuthClient {
	if checkPath == "" {
		checkPath = constvars.DefaultAuthCheck
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &authClient{
		CheckURL:   baseURL + checkPath,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *authClient) Login(ctx context.Context, session contracts.SessionState, credentials models.Credentials) (bool, error) {
	c.Log.Info("authClient.Login called",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingUsernameKey, credentials.Username),
	)

	err := utils.ValidateStruct(credentials)
	if err != nil {
		c.Log.Error("authClient.Login credentials rejected",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, exceptions.ErrInputValidation(err)
	}

	token := utils.BuildBasicAuthToken(credentials.Username, credentials.Password)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.CheckURL, nil)
	if err != nil {
		c.Log.Error("authClient.Login error creating HTTP request",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, utils.BuildBasicAuthHeader(token))
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("authClient.Login error sending HTTP request",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusUnauthorized:
		c.Log.Info("authClient.Login credentials refused",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingUsernameKey, credentials.Username),
		)
		err = session.MarkUnauthenticated(ctx)
		if err != nil {
			c.Log.Warn("authClient.Login error clearing session",
				utils.RequestIDField(ctx),
				zap.Error(err),
			)
		}
		return false, nil
	default:
		c.Log.Error("authClient.Login unexpected status",
			utils.RequestIDField(ctx),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return false, exceptions.ErrAuthCheckStatus(resp.StatusCode)
	}

	principal := new(responses.Principal)
	err = json.NewDecoder(resp.Body).Decode(principal)
	if err != nil {
		c.Log.Error("authClient.Login error decoding principal",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, exceptions.ErrDecodeResponse(err, "principal")
	}

	if principal.Username != credentials.Username {
		err = exceptions.ErrAuthPrincipalMismatch(principal.Username, credentials.Username)
		c.Log.Error("authClient.Login principal mismatch",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, err
	}

	err = session.MarkAuthenticated(ctx, credentials.Username, token)
	if err != nil {
		c.Log.Error("authClient.Login error persisting session",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return false, err
	}

	c.Log.Info("authClient.Login succeeded",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingUsernameKey, credentials.Username),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)
	return true, nil
}

// Logout only clears the local session; the auth API keeps no server session.
func (c *authClient) Logout(ctx context.Context, session contracts.SessionState) error {
	c.Log.Info("authClient.Logout called",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)

	err := session.MarkUnauthenticated(ctx)
	if err != nil {
		c.Log.Error("authClient.Logout error clearing session",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return err
	}
	return nil
}
