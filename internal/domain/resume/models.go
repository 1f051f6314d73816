package resume

const ContentTypePDF = "application/pdf"

type UploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// Target is a short-lived upload location issued by the backend.
type Target struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	Bucket    string `json:"bucket,omitempty"`
	ExpiresIn int    `json:"expires_in"`
	Message   string `json:"message,omitempty"`
}

type Uploaded struct {
	FileKey  string `json:"file_key"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}
