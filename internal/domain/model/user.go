package model

import (
	"time"
)

// User is a registered competitor. Password is an opaque value supplied by the
// external credential service; this core stores it without interpreting it.
type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Password      string    `json:"-"` // Not exposed
	RememberToken *string   `json:"remember_token,omitempty"`
	JoinDate      time.Time `json:"join_date"`
}
