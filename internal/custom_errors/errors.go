package custom_errors

import "errors"

var (
	// Lookup errors.
	ErrPostNotFound       = errors.New("post not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrFieldsNotFound     = errors.New("fields not found")

	// Operation failures.
	ErrPostDeleteFailed       = errors.New("post delete failed")
	ErrAttachmentDeleteFailed = errors.New("attachment delete failed")
	ErrFieldUpdateFailed      = errors.New("field update failed")
	ErrUploadFailed           = errors.New("upload failed")

	// Parameter errors on the batch upload entry point.
	ErrNoFilesUploaded = errors.New("no files uploaded")
	ErrFileKeyNotFound = errors.New("file key not found in upload set")

	// Infrastructure.
	ErrDatabaseQuery  = errors.New("database query error")
	ErrDatabaseScan   = errors.New("database scan error")
	ErrCacheMiss      = errors.New("cache miss")
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidInput   = errors.New("invalid input")
)
