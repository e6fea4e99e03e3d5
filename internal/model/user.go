package model

type UserRole string

const (
	Staff UserRole = "staff"
	Admin UserRole = "admin"
)

// User is a staff account for the admin panel. Students authenticate
// through their own realm, see Student.
// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(20);default:'staff'" json:"role"`
	IsActive bool     `json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
