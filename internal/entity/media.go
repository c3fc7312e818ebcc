package entity

// UploadOptions controls a single object upload.
type UploadOptions struct {
	// Upsert replaces an existing object at the same path.
	Upsert bool
	// ContentType is sniffed from the payload when empty.
	ContentType string
}

// Attachment is a file picked for a listing before it is uploaded.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
