package model

import (
	"medstore/internal/domain/entity"
)

// DiscountModel is the stored shape of a discount ledger document.
type DiscountModel struct {
	ID          string `bson:"id"`
	Code        string `bson:"code"`
	Percentage  int    `bson:"percentage"`
	Description string `bson:"description"`
	ValidUntil  string `bson:"valid_until"`
	MinAmount   int    `bson:"min_amount"`
	Active      bool   `bson:"active"`
}

// ToDiscountDomain maps a stored discount document to the domain entity.
func ToDiscountDomain(m *DiscountModel) *entity.DiscountCode {
	return &entity.DiscountCode{
		ID:          m.ID,
		Code:        m.Code,
		Percentage:  m.Percentage,
		Description: m.Description,
		ValidUntil:  m.ValidUntil,
		MinAmount:   m.MinAmount,
		Active:      m.Active,
	}
}

// FromDiscountDomain maps a domain discount code to its stored document shape.
func FromDiscountDomain(d *entity.DiscountCode) *DiscountModel {
	return &DiscountModel{
		ID:          d.ID,
		Code:        d.Code,
		Percentage:  d.Percentage,
		Description: d.Description,
		ValidUntil:  d.ValidUntil,
		MinAmount:   d.MinAmount,
		Active:      d.Active,
	}
}
