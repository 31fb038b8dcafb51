package backend

import "time"

const (
	// DefaultTimeout bounds every backend call that has no shorter context deadline.
	DefaultTimeout = 60 * time.Second
	// DefaultRetries applies to GET endpoints only.
	DefaultRetries = 1
	// DefaultRetryWait is the default wait between GET retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultAuditLimit matches the backend's own default page size.
	DefaultAuditLimit = 20
)

// API paths, relative to the configured base URL.
const (
	PathChat           = "/api/chat/"
	PathChatSessions   = "/api/chat/sessions"
	PathChatHistory    = "/api/chat/history"
	PathDocumentUpload = "/api/documents/upload"
	PathDocuments      = "/api/documents/"
	PathCompliance     = "/api/compliance/check"
	PathAudit          = "/api/audit/"
)

const (
	headerRequestID = "X-Request-ID"
	fieldFile       = "file"
	fieldUserID     = "user_id"
)
