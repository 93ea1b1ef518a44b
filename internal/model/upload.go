package model

import "io"

// UploadError classifies a submitted file before any upload is attempted.
type UploadError int

const (
	UploadErrNone UploadError = iota
	// UploadErrNoFile marks an empty optional slot in a multi-file form.
	UploadErrNoFile
	UploadErrTooLarge
	UploadErrFailed
)

func (e UploadError) String() string {
	switch e {
	case UploadErrNone:
		return "none"
	case UploadErrNoFile:
		return "no file"
	case UploadErrTooLarge:
		return "too large"
	default:
		return "failed"
	}
}

// UploadedFile is an immutable descriptor for one submitted file. It is built
// once per request by the delivery layer and passed down by value; nothing in
// the gateway mutates shared upload state.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
	Err         UploadError
}

// FileSet maps a form-field name to the files submitted under it,
// in submission order.
type FileSet map[string][]UploadedFile

// UploadResult reports the outcome for one file of a batch upload.
type UploadResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	ID      *int64 `json:"id"`
}

// Attachment is the uploader's view of a stored file: the attachment post id
// plus the blob coordinates kept in the field store.
type Attachment struct {
	ID        int64  `json:"id"`
	ParentID  int64  `json:"parent_id"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}

// DeleteOptions controls post deletion. Soft deletion moves the post to the
// trash status and is reversible; a hard delete is permanent.
type DeleteOptions struct {
	Soft              bool
	DeleteAttachments bool
}
