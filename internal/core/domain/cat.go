package domain

import "time"

// Cat is an owned resource: every mutation path must resolve a Principal
// and pass the ownership check before touching it.
type Cat struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Sex        string     `json:"sex"`
	BreedID    uint       `json:"breed_id"`
	OwnerEmail string     `json:"owner_email"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
