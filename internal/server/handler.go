package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/apinprastya/gdrive"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func (s *Server) createFolderHandler(c echo.Context) error {
	folderName := pathParam(c, paramFolderName)

	folder, err := s.drive.CreateFolder(c.Request().Context(), folderName)
	if err != nil {
		requestLogger(c).WithError(err).WithField("folder", folderName).Error("Error creating folder")
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: gdrive.ProviderError(err).Error()})
	}

	return c.JSON(http.StatusOK, CreateFolderResponse{
		FolderID: folder.ID,
		Message:  msgFolderCreated,
	})
}

func (s *Server) uploadFileHandler(c echo.Context) error {
	file, err := c.FormFile(formFieldFile)
	if err != nil {
		requestLogger(c).WithError(err).Debug("upload without file")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoFile})
	}

	folderName := pathParam(c, paramFolderName)
	logger := requestLogger(c).WithField("folder", folderName).WithField("file", file.Filename)

	src, err := file.Open()
	if err != nil {
		logger.WithError(err).Error("Error uploading file")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUploadFailed})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		logger.WithError(err).Error("Error uploading file")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUploadFailed})
	}

	ctx := c.Request().Context()
	folder, err := s.drive.FindFolder(ctx, folderName)
	if errors.Is(err, gdrive.ErrFolderNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgFolderNotFound})
	}
	if err != nil {
		logger.WithError(err).Error("Error uploading file")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUploadFailed})
	}

	res, err := s.drive.CreateFile(ctx, &gdrive.FileInsertInfo{
		FileBytes: content,
		Filename:  file.Filename,
		MimeType:  file.Header.Get(echo.HeaderContentType),
		ParentID:  folder.ID,
	})
	if err != nil {
		logger.WithError(err).Error("Error uploading file")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUploadFailed})
	}

	return c.JSON(http.StatusOK, UploadFileResponse{
		FileID:   res.FileID,
		FileLink: res.WebViewLink,
		Message:  msgFileUploaded,
	})
}

// pathParam returns the decoded path parameter. echo routes on the raw path
// when the request carries escaped separators, leaving params encoded.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func requestLogger(c echo.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}
