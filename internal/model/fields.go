package model

// FieldMap holds the custom fields attached to a post, keyed by field name.
// Values are arbitrary JSON-encodable data; the gateway never validates keys.
type FieldMap map[string]any

// Attachment meta field keys, written by the uploader.
const (
	FieldAttachedFile = "_attached_file"
	FieldMimeType     = "_mime_type"
	FieldFileSize     = "_file_size"
	FieldURL          = "_url"
)
