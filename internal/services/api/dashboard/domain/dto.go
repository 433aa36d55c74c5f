// Package domain holds DTOs for dashboard http and service contracts
package domain

// Overview carries the independent per domain counts plus the user count
type Overview struct {
	Traditions         int64 `json:"traditions" example:"128"`
	PublicPolicies     int64 `json:"public_policies" example:"42"`
	EthnicGroups       int64 `json:"ethnic_groups" example:"54"`
	CreativeActivities int64 `json:"creative_activities" example:"77"`
	Users              int64 `json:"users" example:"19"`
}

// ListQuery bounds the row count of the recent and top reports. A zero
// limit means the service default; caps above the service maximum are
// clamped rather than rejected
type ListQuery struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,min=1" example:"5"`
}

// ActivityRow is one recent activity entry, newest first
type ActivityRow struct {
	Description string `json:"description" example:"Xoe dance of the Thai people"`
	Kind        string `json:"kind" example:"tradition"`
	Date        string `json:"date" example:"2025-08-14"`
}

// TopRow is one globally ranked top viewed entry
type TopRow struct {
	Name      string `json:"name" example:"Mid-autumn lantern procession"`
	Type      string `json:"type" example:"creative"`
	ViewCount int64  `json:"view_count" example:"1204"`
}
