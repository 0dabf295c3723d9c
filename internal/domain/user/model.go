package user

import "time"

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"uid"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	FullName  *string   `gorm:"size:100" json:"full_name,omitempty"`
	Role      string    `gorm:"size:20;default:'client';not null" json:"role"`
	Status    string    `gorm:"size:20;default:'active';not null" json:"status"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
