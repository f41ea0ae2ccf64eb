package entity

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
