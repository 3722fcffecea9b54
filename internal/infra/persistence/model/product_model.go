package model

import (
	"medstore/internal/domain/entity"
)

// ProductModel is the stored shape of a catalog product document.
type ProductModel struct {
	ID                 string `bson:"id"`
	Name               string `bson:"name"`
	Description        string `bson:"description"`
	Price              int    `bson:"price"`
	Image              string `bson:"image"`
	Category           string `bson:"category"`
	Stock              int    `bson:"stock"`
	Featured           bool   `bson:"featured"`
	DiscountPercentage int    `bson:"discount_percentage,omitempty"`
}

// ToProductDomain maps a stored product document to the domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Price:              m.Price,
		Image:              m.Image,
		Category:           m.Category,
		Stock:              m.Stock,
		Featured:           m.Featured,
		DiscountPercentage: m.DiscountPercentage,
	}
}

// FromProductDomain maps a domain product to its stored document shape.
func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		Image:              p.Image,
		Category:           p.Category,
		Stock:              p.Stock,
		Featured:           p.Featured,
		DiscountPercentage: p.DiscountPercentage,
	}
}
