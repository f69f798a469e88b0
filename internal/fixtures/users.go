package fixtures

import "exam-service/internal/models"

// Users returns the built-in accounts. Login is by email only.
func Users() []models.User {
	return []models.User{
		{ID: "user-1", Name: "Rahul Sharma", Email: "rahul.sharma@email.com", Role: models.RoleStudent, CreatedAt: "2024-01-10"},
		{ID: "user-2", Name: "Priya Patel", Email: "priya.patel@email.com", Role: models.RoleStudent, CreatedAt: "2024-01-12"},
		{ID: "user-3", Name: "Amit Kumar", Email: "amit.kumar@email.com", Role: models.RoleStudent, CreatedAt: "2024-01-18"},
		{ID: "admin-1", Name: "Admin User", Email: "admin@mocktestpro.com", Role: models.RoleAdmin, CreatedAt: "2024-01-01"},
	}
}
