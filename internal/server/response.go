package server

const (
	msgFolderCreated  = "Folder created successfully"
	msgFileUploaded   = "File uploaded successfully"
	msgNoFile         = "No file uploaded."
	msgFolderNotFound = "Folder not found"
	msgUploadFailed   = "Failed to upload file"
)

type CreateFolderResponse struct {
	FolderID string `json:"folderId"`
	Message  string `json:"message"`
}

type UploadFileResponse struct {
	FileID   string `json:"fileId"`
	FileLink string `json:"fileLink"`
	Message  string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
