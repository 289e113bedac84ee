package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"auditveda/config"
	"auditveda/services/agreement"
	"auditveda/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Uploader stores generated agreement PDFs in Google Drive. It prefers
// delegated OAuth (uploads land in a personal Drive, no storage quota
// issues); a service account is only usable against a shared drive.
type Uploader struct {
	service       *gdrive.Service
	folderID      string
	sharedDriveID string
}

// MissingCredentials lists the environment variables still needed before an
// uploader can be built. Empty means Drive is fully configured.
func MissingCredentials(cfg config.Config) []string {
	if cfg.HasDelegatedOAuth() {
		if cfg.DriveFolderID == "" {
			return []string{"GOOGLE_DRIVE_FOLDER_ID"}
		}
		return nil
	}
	if cfg.HasServiceAccount() {
		var missing []string
		if cfg.DriveFolderID == "" {
			missing = append(missing, "GOOGLE_DRIVE_FOLDER_ID")
		}
		// A service account has no storage quota of its own, so it can
		// only write into a shared drive.
		if cfg.DriveSharedDriveID == "" {
			missing = append(missing, "GOOGLE_DRIVE_SHARED_DRIVE_ID")
		}
		return missing
	}
	return []string{
		"GOOGLE_OAUTH_CLIENT_ID", "GOOGLE_OAUTH_CLIENT_SECRET",
		"GOOGLE_OAUTH_REDIRECT_URI", "GOOGLE_OAUTH_REFRESH_TOKEN",
	}
}

// NewUploader builds a Drive uploader from whichever credential set the
// config carries. Callers should check MissingCredentials first.
func NewUploader(ctx context.Context, cfg config.Config) (*Uploader, error) {
	logger := utils.GetLogger()

	if cfg.HasDelegatedOAuth() {
		oc := &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURI,
			Scopes:       []string{gdrive.DriveFileScope},
			Endpoint:     google.Endpoint,
		}
		ts := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.OAuthRefreshToken})
		svc, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			return nil, fmt.Errorf("building drive service (oauth): %w", err)
		}
		logger.Info("Drive uploader ready", zap.String("auth", "delegated_oauth"))
		return &Uploader{
			service:  svc,
			folderID: cfg.DriveFolderID,
		}, nil
	}

	if cfg.HasServiceAccount() {
		credsJSON, err := serviceAccountJSON(cfg)
		if err != nil {
			return nil, err
		}
		svc, err := gdrive.NewService(ctx,
			option.WithCredentialsJSON(credsJSON),
			option.WithScopes(gdrive.DriveFileScope))
		if err != nil {
			return nil, fmt.Errorf("building drive service (service account): %w", err)
		}
		logger.Info("Drive uploader ready", zap.String("auth", "service_account"))
		return &Uploader{
			service:       svc,
			folderID:      cfg.DriveFolderID,
			sharedDriveID: cfg.DriveSharedDriveID,
		}, nil
	}

	return nil, fmt.Errorf("no Google Drive credentials configured")
}

// Upload creates the file under the configured folder and returns its
// shareable link.
func (u *Uploader) Upload(ctx context.Context, fileName string, content []byte) (*agreement.UploadResult, error) {
	meta := &gdrive.File{
		Name:     fileName,
		MimeType: "application/pdf",
	}
	if u.folderID != "" {
		meta.Parents = []string{u.folderID}
	}

	call := u.service.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(content)).
		Fields("id", "name", "webViewLink")
	if u.sharedDriveID != "" {
		call = call.SupportsAllDrives(true)
	}

	file, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("uploading %s to Drive: %w", fileName, err)
	}

	link := file.WebViewLink
	if link == "" {
		link = "https://drive.google.com/file/d/" + file.Id + "/view"
	}
	return &agreement.UploadResult{ID: file.Id, Name: file.Name, Link: link}, nil
}

// serviceAccountJSON reassembles the credentials JSON the Google SDK
// expects from the individual environment variables.
func serviceAccountJSON(cfg config.Config) ([]byte, error) {
	creds := map[string]string{
		"type":                        cfg.GoogleType,
		"project_id":                  cfg.GoogleProjectID,
		"private_key_id":              cfg.GooglePrivateKeyID,
		"private_key":                 strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n"),
		"client_email":                cfg.GoogleClientEmail,
		"client_id":                   cfg.GoogleClientID,
		"auth_uri":                    cfg.GoogleAuthURI,
		"token_uri":                   cfg.GoogleTokenURI,
		"auth_provider_x509_cert_url": cfg.GoogleAuthProviderCertURL,
		"client_x509_cert_url":        cfg.GoogleClientCertURL,
	}
	out, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encoding service account credentials: %w", err)
	}
	return out, nil
}
