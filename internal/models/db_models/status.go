package db_models

// PlaceStatus controls public visibility of a place. Only approved places
// are served to the public.
type PlaceStatus int

const (
	PlaceApproved PlaceStatus = 1
	PlaceArchived PlaceStatus = 2
)

func (s PlaceStatus) String() string {
	switch s {
	case PlaceApproved:
		return "Approved"
	case PlaceArchived:
		return "Archived"
	default:
		return "Unknown"
	}
}

// SubmissionStatus tracks a submission through the moderation workflow.
// Every submission starts as Pending.
type SubmissionStatus int

const (
	SubmissionPending  SubmissionStatus = 1
	SubmissionApproved SubmissionStatus = 2
	SubmissionRejected SubmissionStatus = 3
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionPending:
		return "Pending"
	case SubmissionApproved:
		return "Approved"
	case SubmissionRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// ParseSubmissionStatus maps a query-string value to a status. The boolean
// reports whether the value named a known status.
func ParseSubmissionStatus(value string) (SubmissionStatus, bool) {
	switch value {
	case "pending", "Pending":
		return SubmissionPending, true
	case "approved", "Approved":
		return SubmissionApproved, true
	case "rejected", "Rejected":
		return SubmissionRejected, true
	default:
		return 0, false
	}
}

type UserRole int

const (
	RoleAdmin     UserRole = 1
	RoleModerator UserRole = 2
)

func (r UserRole) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleModerator:
		return "Moderator"
	default:
		return "Unknown"
	}
}
