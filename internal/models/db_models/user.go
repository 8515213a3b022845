package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string // empty for OAuth-only users

	Avatar   Image `gorm:"embedded;embeddedPrefix:avatar_"`
	Location string
	Bio      string

	// Denormalized profile counters, maintained by the application
	Trips     int
	Countries int
	Friends   int

	ProfileVisibility string // public, friends, private
	ShowEmail         bool
	ShowLocation      bool
}
