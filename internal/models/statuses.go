package models

type UserRole string
type ProspectStatus string
type ReportStatus string
type Platform string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"

	// Заявка рассматривается ровно один раз: pending -> approved | rejected.
	ProspectStatusPending  ProspectStatus = "pending"
	ProspectStatusApproved ProspectStatus = "approved"
	ProspectStatusRejected ProspectStatus = "rejected"

	ReportStatusOpen          ReportStatus = "open"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusClosed        ReportStatus = "closed"

	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// ReportReasons - фиксированный словарь причин жалобы
var ReportReasons = []string{
	"spam",
	"inappropriate",
	"fake",
	"offensive",
	"conflict",
	"inaccurate",
	"other",
}

// IsValidReportReason проверяет причину по словарю
func IsValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// IsValidReportStatus проверяет статус жалобы
func IsValidReportStatus(status ReportStatus) bool {
	switch status {
	case ReportStatusOpen, ReportStatusInvestigating, ReportStatusClosed:
		return true
	}
	return false
}
