package model

// Role values for User.Role.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User maps to the users table.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'member'"     json:"role"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
