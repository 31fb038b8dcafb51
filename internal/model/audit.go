package model

// AuditCategory groups backend audit events for display.
type AuditCategory string

const (
	AuditCategoryAlert  AuditCategory = "alert"
	AuditCategoryUpload AuditCategory = "upload"
	AuditCategoryQuery  AuditCategory = "query"
	AuditCategoryOther  AuditCategory = "other"
)

// AuditLog is one backend audit record.
type AuditLog struct {
	EventType string
	UserID    string
	Timestamp Timestamp
	Details   map[string]any
}

// Category maps the backend event type to its display category.
func (a AuditLog) Category() AuditCategory {
	switch a.EventType {
	case "flagged_query":
		return AuditCategoryAlert
	case "document_upload":
		return AuditCategoryUpload
	case "query":
		return AuditCategoryQuery
	default:
		return AuditCategoryOther
	}
}
