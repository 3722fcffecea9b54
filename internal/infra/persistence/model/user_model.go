// Package model contains the persistence representations of the domain
// entities, with BSON tags matching the stored document shapes, and the
// mapping functions between the two.
package model

import (
	"medstore/internal/domain/entity"
)

// UserModel is the stored shape of a user document. The role is persisted
// as the historical is_admin flag.
type UserModel struct {
	ID       string `bson:"id"`
	Username string `bson:"username"`
	Email    string `bson:"email"`
	Password string `bson:"password"` // bcrypt hash, never the raw password.
	FullName string `bson:"full_name"`
	Phone    string `bson:"phone"`
	IsAdmin  bool   `bson:"is_admin"`
}

// ToUserDomain maps a stored user document to the domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	role := entity.RoleUser
	if m.IsAdmin {
		role = entity.RoleAdmin
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		FullName:     m.FullName,
		Phone:        m.Phone,
		Role:         role,
	}
}

// FromUserDomain maps a domain user to its stored document shape.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
		FullName: u.FullName,
		Phone:    u.Phone,
		IsAdmin:  u.Role == entity.RoleAdmin,
	}
}
