// Package model contains domain models passed between layers.
package model

// Contact is a person known to the address book.
// JSON names mirror the public /contact payload.
type Contact struct {
	ID        string `json:"id"        bson:"_id"`
	Email     string `json:"email"     bson:"email"`
	FirstName string `json:"firstName" bson:"first_name"`
	Pseudo    string `json:"pseudo"    bson:"pseudo"` // display name / alias
}
