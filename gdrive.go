package gdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	FolderMimeType  = "application/vnd.google-apps.folder"
	DefaultMimeType = "application/octet-stream"
)

var (
	ErrNoCredentials  = errors.New("google drive credentials not available")
	ErrFolderNotFound = errors.New("folder not found")
)

// GDrive is a thin handle over the Drive v3 files API. It holds no mutable
// state after construction and can be shared between requests.
type GDrive struct {
	oauthConfig  *oauth2.Config
	driveService *drive.Service
}

// OAuthConfig builds the oauth2 config for the given credentials.
func OAuthConfig(creds *Credentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{drive.DriveScope},
	}
}

// New creates the drive client. Without a token the client is still returned
// but every operation fails with ErrNoCredentials.
func New(ctx context.Context, creds *Credentials) (*GDrive, error) {
	cfg := OAuthConfig(creds)
	if !creds.HasToken() {
		return &GDrive{oauthConfig: cfg}, nil
	}
	httpClient := cfg.Client(ctx, creds.Token)
	g, err := NewWithOptions(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	g.oauthConfig = cfg
	return g, nil
}

// NewWithOptions creates the drive client from raw client options. Useful to
// point the client at another endpoint.
func NewWithOptions(ctx context.Context, opts ...option.ClientOption) (*GDrive, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &GDrive{driveService: driveService}, nil
}

// GetLoginURL returns the consent page URL used to obtain a token file. Empty
// when the client was built from raw options.
func (g *GDrive) GetLoginURL() string {
	if g.oauthConfig == nil {
		return ""
	}
	return g.oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

func (g *GDrive) Ready() bool {
	return g.driveService != nil
}

// CreateFolder creates a folder with the given name at the root of the drive.
// Names are not checked, so an existing name yields a second folder.
func (g *GDrive) CreateFolder(ctx context.Context, name string) (*Folder, error) {
	if !g.Ready() {
		return nil, ErrNoCredentials
	}
	res, err := g.driveService.Files.Create(
		&drive.File{
			Name:     name,
			MimeType: FolderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("create folder %q: %w", name, err)
	}
	logrus.WithField("name", name).WithField("id", res.Id).Debug("folder created")
	return &Folder{ID: res.Id, Name: name}, nil
}

// FindFolder returns the first non trashed folder named name, in the order
// Drive lists them. Other folders sharing the name are ignored.
func (g *GDrive) FindFolder(ctx context.Context, name string) (*Folder, error) {
	if !g.Ready() {
		return nil, ErrNoCredentials
	}
	files, err := g.driveService.Files.List().
		Q(folderQuery(name)).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list folders %q: %w", name, err)
	}
	if len(files.Files) == 0 {
		return nil, ErrFolderNotFound
	}
	f := files.Files[0]
	return &Folder{ID: f.Id, Name: f.Name}, nil
}

// CreateFile uploads the payload as a new file under info.ParentID.
func (g *GDrive) CreateFile(ctx context.Context, info *FileInsertInfo) (*FileInfo, error) {
	if !g.Ready() {
		return nil, ErrNoCredentials
	}
	mimeType := info.MimeType
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	meta := &drive.File{Name: info.Filename}
	if info.ParentID != "" {
		meta.Parents = []string{info.ParentID}
	}
	res, err := g.driveService.Files.Create(meta).
		Media(bytes.NewReader(info.FileBytes), googleapi.ContentType(mimeType)).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("create file %q: %w", info.Filename, err)
	}
	logrus.WithField("name", info.Filename).WithField("id", res.Id).WithField("size", len(info.FileBytes)).
		Debug("file uploaded")
	return &FileInfo{FileID: res.Id, Name: info.Filename, WebViewLink: res.WebViewLink}, nil
}

// ProviderError strips the operation context GDrive adds, leaving the error
// as Drive or the transport reported it.
func ProviderError(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

func folderQuery(name string) string {
	return fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escapeQuery(name), FolderMimeType)
}

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}
