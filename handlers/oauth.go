package handlers

import (
	"net/http"
	"os"

	"auditveda/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
)

// envFile is where the captured refresh token is persisted for reuse.
const envFile = ".env.local"

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.OAuthClientID,
		ClientSecret: config.AppConfig.OAuthClientSecret,
		RedirectURL:  config.AppConfig.OAuthRedirectURI,
		Scopes:       []string{gdrive.DriveFileScope},
		Endpoint:     google.Endpoint,
	}
}

// GoogleOAuthStartHandler redirects the operator to Google's consent screen.
// Offline access with forced approval guarantees a refresh token comes back.
func (hb *HandlerBundle) GoogleOAuthStartHandler(c *gin.Context) {
	if config.AppConfig.OAuthClientID == "" || config.AppConfig.OAuthClientSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google OAuth client is not configured"})
		return
	}
	url := oauthConfig().AuthCodeURL("agreement-drive-setup",
		oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleOAuthCallbackHandler exchanges the consent code and stores the
// refresh token so Drive uploads can authenticate without re-consent.
func (hb *HandlerBundle) GoogleOAuthCallbackHandler(c *gin.Context) {
	logger := zap.L()

	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Consent was denied: " + errParam})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	token, err := oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to exchange the authorization code"})
		return
	}
	if token.RefreshToken == "" {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Google did not return a refresh token. Revoke the app's access and try again.",
		})
		return
	}

	if err := persistRefreshToken(token.RefreshToken); err != nil {
		logger.Error("Failed to persist refresh token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store the refresh token"})
		return
	}
	config.AppConfig.OAuthRefreshToken = token.RefreshToken

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Drive access configured. Restart the server to pick up the new token.",
	})
}

// persistRefreshToken merges the token into the local env file.
func persistRefreshToken(refreshToken string) error {
	env, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		env = map[string]string{}
	}
	env["GOOGLE_OAUTH_REFRESH_TOKEN"] = refreshToken
	return godotenv.Write(env, envFile)
}
