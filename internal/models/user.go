package models

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID        string   `bson:"_id,omitempty" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email" json:"email"`
	Role      UserRole `bson:"role" json:"role"`
	Avatar    string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt string   `bson:"created_at" json:"created_at"`
}
