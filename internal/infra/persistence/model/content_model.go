package model

import (
	"medstore/internal/domain/entity"
)

// ArticleModel is the stored shape of a magazine article document.
type ArticleModel struct {
	ID      string `bson:"id"`
	Title   string `bson:"title"`
	Content string `bson:"content"`
	Image   string `bson:"image"`
	Summary string `bson:"summary"`
	Date    string `bson:"date"`
	Author  string `bson:"author"`
}

// ToArticleDomain maps a stored article document to the domain entity.
func ToArticleDomain(m *ArticleModel) *entity.Article {
	return &entity.Article{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Image:   m.Image,
		Summary: m.Summary,
		Date:    m.Date,
		Author:  m.Author,
	}
}

// FromArticleDomain maps a domain article to its stored document shape.
func FromArticleDomain(a *entity.Article) *ArticleModel {
	return &ArticleModel{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Image:   a.Image,
		Summary: a.Summary,
		Date:    a.Date,
		Author:  a.Author,
	}
}

// ServiceModel is the stored shape of a service-page document.
type ServiceModel struct {
	ID          string   `bson:"id"`
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	Image       string   `bson:"image"`
	Features    []string `bson:"features"`
}

// ToServiceDomain maps a stored service document to the domain entity.
func ToServiceDomain(m *ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
		Features:    m.Features,
	}
}

// FromServiceDomain maps a domain service to its stored document shape.
func FromServiceDomain(s *entity.Service) *ServiceModel {
	return &ServiceModel{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Image:       s.Image,
		Features:    s.Features,
	}
}
