package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User statuses and types as stored in the Usuario collection.
const (
	UserStatusActive = "ativo"
	UserTypeDefault  = "usuario"
	UserTypeAdmin    = "admin"
)

// User represents an account that can authenticate. BSON field names match
// the pre-existing Usuario collection; the JSON shape is the API contract.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"nome" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"senha" json:"-"`
	Type         string             `bson:"tipo" json:"type"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserPatch describes a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Type         *string
	Status       *string
}
