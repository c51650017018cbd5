package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-planner-api/core/config"
	"go-planner-api/core/constants"
	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/core/utils"
	"go-planner-api/modules/calendar/entity"
	"go-planner-api/modules/calendar/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenResult is the outcome of a code exchange or refresh grant. RefreshToken
// is empty when the provider chose not to reissue one.
type TokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// OAuthService owns the Google OAuth credential lifecycle: consent URL,
// code exchange, refresh, persistence and revocation.
type OAuthService struct {
	repo repository.CalendarRepository

	// Overridable in tests; production uses the Google endpoints.
	endpoint   oauth2.Endpoint
	tokenURL   string
	revokeURL  string
	httpClient *http.Client
}

func NewOAuthService(repo repository.CalendarRepository) *OAuthService {
	return &OAuthService{
		repo:       repo,
		endpoint:   google.Endpoint,
		tokenURL:   constants.GoogleTokenURL,
		revokeURL:  constants.GoogleRevokeURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *OAuthService) oauthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RedirectURI == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.ResolveRedirectURI(cfg.Server.BaseURL),
		Scopes:       []string{constants.GoogleCalendarScope},
		Endpoint:     s.endpoint,
	}, nil
}

// GetAuthorizationURL builds the consent URL for the given user. Offline
// access plus prompt=consent makes Google reissue a refresh token even on
// re-authorization.
func (s *OAuthService) GetAuthorizationURL(ctx context.Context, userID uuid.UUID) (string, *errors.AppError) {
	oauthConfig, appErr := s.oauthConfig()
	if appErr != nil {
		return "", appErr
	}

	state := utils.GenerateRandomString(32)
	expiresAt := time.Now().Add(constants.OAuthStateTTL)
	if err := s.repo.SaveOAuthState(ctx, state, userID, expiresAt); err != nil {
		logger.Error("OAuthService:GetAuthorizationURL:SaveOAuthState:Error", "error", err, "user_id", userID)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store state token", err)
	}

	authURL := oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return authURL, nil
}

// ExchangeCode redeems a one-time authorization code for a token pair.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*TokenResult, *errors.AppError) {
	oauthConfig, appErr := s.oauthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		description := err.Error()
		if retrieveErr, ok := err.(*oauth2.RetrieveError); ok {
			if retrieveErr.ErrorDescription != "" {
				description = retrieveErr.ErrorDescription
			} else if retrieveErr.ErrorCode != "" {
				description = retrieveErr.ErrorCode
			}
		}
		logger.Error("OAuthService:ExchangeCode:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrOAuthExchange, description, err)
	}

	expiresIn := constants.DefaultTokenLifetime
	if !token.Expiry.IsZero() {
		if remaining := int(time.Until(token.Expiry).Seconds()); remaining > 0 {
			expiresIn = remaining
		}
	}

	return &TokenResult{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// RefreshAccessToken redeems the refresh token for a new access token. The
// refresh token itself is not rotated; callers keep the one they have.
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResult, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	data := url.Values{}
	data.Set("client_id", cfg.GoogleAPI.ClientID)
	data.Set("client_secret", cfg.GoogleAPI.ClientSecret)
	data.Set("refresh_token", refreshToken)
	data.Set("grant_type", "refresh_token")

	resp, err := s.httpClient.PostForm(s.tokenURL, data)
	if err != nil {
		logger.Error("OAuthService:RefreshAccessToken:PostForm:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrOAuthRefresh, "token endpoint unreachable", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("OAuthService:RefreshAccessToken:Decode:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrOAuthRefresh, "failed to parse token response", err)
	}

	if errMsg, ok := result["error"].(string); ok {
		errDesc, _ := result["error_description"].(string)
		logger.Error("OAuthService:RefreshAccessToken:ProviderError", "error", errMsg, "description", errDesc)
		return nil, errors.NewAppError(errors.ErrOAuthRefresh, fmt.Sprintf("%s - %s", errMsg, errDesc), nil)
	}

	accessToken, ok := result["access_token"].(string)
	if !ok || accessToken == "" {
		logger.Error("OAuthService:RefreshAccessToken:NoAccessToken", "result", result)
		return nil, errors.NewAppError(errors.ErrOAuthRefresh, "no access_token in response", nil)
	}

	expiresIn := constants.DefaultTokenLifetime
	if expiresInFloat, ok := result["expires_in"].(float64); ok {
		expiresIn = int(expiresInFloat)
	}

	return &TokenResult{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// PersistCredentials writes a token result back onto the user's credential
// record. A missing refresh token in the result keeps the stored one, since
// Google only reissues refresh tokens on consent.
func (s *OAuthService) PersistCredentials(ctx context.Context, creds *entity.GoogleCredentials, result *TokenResult) error {
	refreshToken := creds.RefreshToken
	if result.RefreshToken != "" {
		refreshToken = result.RefreshToken
	}

	expiresIn := result.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = constants.DefaultTokenLifetime
	}
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)

	if err := s.repo.UpdateTokens(ctx, creds.UserID, result.AccessToken, refreshToken, expiresAt); err != nil {
		return err
	}

	creds.AccessToken = result.AccessToken
	creds.RefreshToken = refreshToken
	creds.TokenExpiresAt = &expiresAt
	return nil
}

// AuthenticatedClient returns an HTTP client authorized for the Calendar API
// on behalf of the credential owner, refreshing the access token first when
// it is expired. The client carries both tokens so the oauth2 transport can
// also refresh mid-call.
func (s *OAuthService) AuthenticatedClient(ctx context.Context, creds *entity.GoogleCredentials) (*http.Client, *errors.AppError) {
	if !creds.Connected() {
		return nil, errors.NewAppError(errors.ErrNotConnected, "Google Calendar is not connected", nil)
	}

	if creds.Expired(time.Now()) {
		logger.Info("OAuthService:AuthenticatedClient:RefreshingToken", "user_id", creds.UserID)
		result, appErr := s.RefreshAccessToken(ctx, creds.RefreshToken)
		if appErr != nil {
			return nil, appErr
		}
		if err := s.PersistCredentials(ctx, creds, result); err != nil {
			logger.Error("OAuthService:AuthenticatedClient:Persist:Error", "error", err, "user_id", creds.UserID)
			// The refreshed token is still valid for this request
		}
	}

	oauthConfig, appErr := s.oauthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}
	if creds.TokenExpiresAt != nil {
		token.Expiry = *creds.TokenExpiresAt
	}

	return oauthConfig.Client(ctx, token), nil
}

// Disconnect revokes the current access token on a best-effort basis and then
// unconditionally wipes the credential record. Revocation is advisory; local
// disconnect always succeeds.
func (s *OAuthService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	creds, err := s.repo.GetCredentials(ctx, userID)
	if err == nil && creds.AccessToken != "" {
		s.revokeToken(ctx, creds.AccessToken)
	}

	if err := s.repo.ClearCredentials(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to clear credentials", err)
	}

	logger.Info("OAuthService:Disconnect:Success", "user_id", userID)
	return nil
}

func (s *OAuthService) revokeToken(ctx context.Context, accessToken string) {
	data := url.Values{}
	data.Set("token", accessToken)

	resp, err := s.httpClient.PostForm(s.revokeURL, data)
	if err != nil {
		logger.Warn("OAuthService:revokeToken:Error", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("OAuthService:revokeToken:NonOKStatus", "status", resp.StatusCode)
	}
}
