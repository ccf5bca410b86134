package users

import "time"

// AdminUser is a backoffice account. Public visitors never authenticate;
// only gallery staff log in to manage content and uploads.
type AdminUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null;uniqueIndex:idx_admin_users_email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
