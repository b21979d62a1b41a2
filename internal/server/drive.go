package server

//go:generate mockgen -source=drive.go -destination=mock_drive.go -package=server

import (
	"context"

	"github.com/apinprastya/gdrive"
)

// Drive is the part of the drive client the handlers depend on.
type Drive interface {
	CreateFolder(ctx context.Context, name string) (*gdrive.Folder, error)
	FindFolder(ctx context.Context, name string) (*gdrive.Folder, error)
	CreateFile(ctx context.Context, info *gdrive.FileInsertInfo) (*gdrive.FileInfo, error)
}
