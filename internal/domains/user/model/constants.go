package model

const (
	MinUsernameLength = 2
	MaxUsernameLength = 50
	MaxEmailLength    = 255
	MaxPasswordLength = 72 // bcrypt ignores bytes past 72
)
