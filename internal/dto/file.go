package dto

// File is a generated document handed back to the HTTP layer as a
// download.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}
