package dto

import (
	"time"
)

// FileOutput is the wire shape of a file's metadata
type FileOutput struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	OwnerID     string    `json:"owner_id"`
	SharedWith  []string  `json:"shared_with"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilesInput lists accessible files
type ListFilesInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	All           bool   `query:"all" description:"List every file (requires files.manage)"`
}

// ListFilesOutput wraps the listing
type ListFilesOutput struct {
	Body struct {
		Files []FileOutput `json:"files"`
		Total int          `json:"total"`
	}
}

// UploadFileInput carries the raw upload bytes
type UploadFileInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	ContentType   string `header:"Content-Type" description:"MIME type of the upload"`
	Filename      string `query:"filename" required:"true" minLength:"1" maxLength:"255" description:"Name to store the file under"`
	RawBody       []byte
}

// FileOutputWrapper wraps a single file's metadata
type FileOutputWrapper struct {
	Body FileOutput `json:"body"`
}

// DownloadFileInput fetches the stored bytes
type DownloadFileInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	FileID        string `path:"file_id" required:"true" description:"File document id"`
}

// DownloadFileOutput streams the stored bytes back
type DownloadFileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ShareFileInput replaces a file's share list
type ShareFileInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	FileID        string `path:"file_id" required:"true" description:"File document id"`
	Body          struct {
		UserIDs []string `json:"user_ids" required:"true" description:"Users allowed to download the file"`
	}
}

// DeleteFileInput removes a file
type DeleteFileInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	FileID        string `path:"file_id" required:"true" description:"File document id"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
