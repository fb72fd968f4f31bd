package model

import "time"

// FacultyProfile is the profile a faculty member saves under their uid.
// Writes are full replacements; there is one profile per uid.
type FacultyProfile struct {
	UID       string    `json:"uid" firestore:"-"`
	FirstName string    `json:"firstName" firestore:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName"`
	Email     string    `json:"email" firestore:"email"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
