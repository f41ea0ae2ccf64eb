package entity

type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusPending UserStatus = "pending"
	StatusLocked  UserStatus = "locked"
)
