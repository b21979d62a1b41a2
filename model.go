package gdrive

type Folder struct {
	ID   string
	Name string
}

type FileInsertInfo struct {
	FileBytes []byte
	Filename  string
	MimeType  string
	ParentID  string
}

type FileInfo struct {
	FileID      string
	Name        string
	WebViewLink string
}
