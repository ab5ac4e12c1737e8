package sdk

// Resource types mirror the portal backend's serializers. Field names follow
// the backend's snake_case JSON wire format.

// User is an account on the portal. Staff and superusers may access the
// administrative console.
type User struct {
	UserID      int    `json:"user_id"`
	Username    string `json:"username" validate:"required"`
	FullName    string `json:"full_name"`
	Email       string `json:"email" validate:"required,email"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Role is a named group of permissions.
type Role struct {
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name" validate:"required"`
}

// UserRole links a user to a role.
type UserRole struct {
	User int `json:"user"`
	Role int `json:"role"`
}

// Permission is a grantable capability. Names are dotted, "module.action".
type Permission struct {
	PermissionID   int    `json:"permission_id"`
	PermissionName string `json:"permission_name"`
}

// RolePermission links a role to a permission.
type RolePermission struct {
	Role       int `json:"role"`
	Permission int `json:"permission"`
}

// Notice statuses.
const (
	NoticeStatusDraft     = "Draft"
	NoticeStatusPublished = "Published"
	NoticeStatusArchived  = "Archived"
)

// Notice is a public announcement with a publication window.
type Notice struct {
	NoticeID         int    `json:"notice_id"`
	Title            string `json:"title" validate:"required"`
	Content          string `json:"content,omitempty"`
	PublishDate      string `json:"publish_date" validate:"required"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	DocumentFilePath string `json:"document_file_path,omitempty"`
	CreatedBy        int    `json:"created_by,omitempty"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=Draft Published Archived"`
}

// Tender is a procurement notice with a submission deadline.
type Tender struct {
	TenderID           int    `json:"tender_id"`
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description,omitempty"`
	TenderDocumentPath string `json:"tender_document_path" validate:"required"`
	SubmissionDeadline string `json:"submission_deadline" validate:"required"`
	OpeningDate        string `json:"opening_date,omitempty"`
}

// NewsEvent kinds.
const (
	NewsEventTypeNews         = "News"
	NewsEventTypeEvent        = "Event"
	NewsEventTypeAnnouncement = "Announcement"
)

// NewsEvent is a news item, event, or announcement.
type NewsEvent struct {
	NewsEventID int    `json:"news_event_id"`
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	Type        string `json:"type" validate:"required,oneof=News Event Announcement"`
	CreatedBy   int    `json:"created_by,omitempty"`
}

// Gallery media kinds.
const (
	GalleryTypePhoto = "Photo"
	GalleryTypeVideo = "Video"
)

// GalleryItem is an uploaded photo or video.
type GalleryItem struct {
	MediaID    int    `json:"media_id"`
	Caption    string `json:"caption,omitempty"`
	FilePath   string `json:"file_path" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=Photo Video"`
	UploadDate string `json:"upload_date,omitempty"`
}

// Document is a downloadable file (forms, applications, reports).
type Document struct {
	DocID      int    `json:"doc_id"`
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category,omitempty"`
	FilePath   string `json:"file_path" validate:"required"`
	UploadedBy int    `json:"uploaded_by,omitempty"`
}

// SchemeProject describes a government scheme or local project.
type SchemeProject struct {
	SPID        int    `json:"sp_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Type        string `json:"type" validate:"required,oneof=Scheme Project"`
}

// Feedback triage statuses.
const (
	FeedbackStatusNew        = "New"
	FeedbackStatusInProgress = "In Progress"
	FeedbackStatusResolved   = "Resolved"
	FeedbackStatusClosed     = "Closed"
)

// Feedback is a citizen-submitted message; admins triage it.
type Feedback struct {
	FeedbackID    int    `json:"feedback_id"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	CitizenUser   int    `json:"citizen_user,omitempty"`
	CitizenName   string `json:"citizen_name,omitempty"`
	CitizenEmail  string `json:"citizen_email,omitempty"`
	SubmittedDate string `json:"submitted_date,omitempty"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=New 'In Progress' Resolved Closed"`
}

// HelplineQuery is a phoned-in or submitted query awaiting assignment.
type HelplineQuery struct {
	QueryID       int    `json:"query_id"`
	Title         string `json:"title,omitempty"`
	Details       string `json:"details"`
	ContactNumber string `json:"contact_number"`
	QueryDate     string `json:"query_date,omitempty"`
	AssignedTo    int    `json:"assigned_to,omitempty"`
}
