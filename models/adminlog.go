package models

import "time"

// Дії адміністратора, що потрапляють у журнал.
const (
	ActionViewDashboard   = "VIEW_DASHBOARD"
	ActionViewUserDetails = "VIEW_USER_DETAILS"
	ActionUpdateUser      = "UPDATE_USER"
	ActionDeleteUser      = "DELETE_USER"
	ActionViewSystemInfo  = "VIEW_SYSTEM_INFO"
)

// AdminLog — журнал дій адміністраторів, лише для читання з боку клієнта.
type AdminLog struct {
	ID            int       `json:"id" db:"id"`
	AdminID       int       `json:"admin_id" db:"admin_id"`
	AdminUsername string    `json:"admin_username,omitempty"`
	Action        string    `json:"action" db:"action"`
	TargetType    *string   `json:"target_type" db:"target_type"`
	TargetID      *int      `json:"target_id" db:"target_id"`
	Details       *string   `json:"details" db:"details"`
	IPAddress     string    `json:"ip_address" db:"ip_address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
