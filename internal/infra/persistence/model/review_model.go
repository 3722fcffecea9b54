package model

import (
	"time"

	"medstore/internal/domain/entity"
)

// ReviewModel is the stored shape of a product review document.
type ReviewModel struct {
	ID        string    `bson:"id"`
	UserID    string    `bson:"user_id"`
	ProductID string    `bson:"product_id"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	UserName  string    `bson:"user_name"`
	CreatedAt time.Time `bson:"created_at"`
}

// ToReviewDomain maps a stored review document to the domain entity.
func ToReviewDomain(m *ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		UserName:  m.UserName,
		CreatedAt: m.CreatedAt,
	}
}

// FromReviewDomain maps a domain review to its stored document shape.
func FromReviewDomain(r *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
	}
}
