package models

import "time"

// User is the typed session/profile record. Optional profile fields are
// named, not stuffed into an untyped blob.
type User struct {
	UserID       string            `json:"userId" bson:"userid"`
	Username     string            `json:"username" bson:"username"`
	Email        string            `json:"email" bson:"email"`
	PasswordHash string            `json:"-" bson:"passwordhash"`
	Mobile       string            `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Addresses    []ShippingAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`
	StyleProfile string            `json:"styleProfile,omitempty" bson:"styleprofile,omitempty"`
	AvatarPath   string            `json:"avatarPath,omitempty" bson:"avatarpath,omitempty"`
	CreatedAt    time.Time         `json:"createdAt" bson:"createdat"`
	LastLogin    time.Time         `json:"lastLogin,omitempty" bson:"lastlogin,omitempty"`
}
