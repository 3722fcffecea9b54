package seed

import (
	"medstore/internal/domain/entity"

	"github.com/google/uuid"
)

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Blood Pressure Monitor",
			Description: "Automatic upper-arm blood pressure monitor with memory for two users",
			Price:       70000,
			Image:       "https://images.unsplash.com/photo-1595464144526-5fb181b74625",
			Category:    "devices",
			Stock:       50,
			Featured:    true,
		},
		{
			ID:                 uuid.New().String(),
			Name:               "Digital Thermometer",
			Description:        "Fast and accurate digital thermometer",
			Price:              45000,
			Image:              "https://images.unsplash.com/photo-1606206873764-fd15e242df52",
			Category:           "devices",
			Stock:              120,
			DiscountPercentage: 10,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Vitamin D3 1000 IU",
			Description: "Daily vitamin D supplement, 60 softgels",
			Price:       32000,
			Image:       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae",
			Category:    "vitamins",
			Stock:       200,
			Featured:    true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "First Aid Kit",
			Description: "Compact household first aid kit, 48 pieces",
			Price:       86000,
			Image:       "https://images.unsplash.com/photo-1603398938378-e54eab446dde",
			Category:    "first-aid",
			Stock:       75,
		},
		{
			ID:                 uuid.New().String(),
			Name:               "Pulse Oximeter",
			Description:        "Fingertip pulse oximeter with OLED display",
			Price:              58000,
			Image:              "https://images.unsplash.com/photo-1584362917165-526a968579e8",
			Category:           "devices",
			Stock:              90,
			DiscountPercentage: 15,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Omega-3 Fish Oil",
			Description: "High-strength omega-3 capsules, 90 count",
			Price:       64000,
			Image:       "https://images.unsplash.com/photo-1550572017-edd951aa8f72",
			Category:    "vitamins",
			Stock:       150,
		},
	}
}

func sampleArticles() []*entity.Article {
	return []*entity.Article{
		{
			ID:      uuid.New().String(),
			Title:   "Why Home Blood Pressure Monitoring Matters",
			Content: "Regular blood pressure monitoring at home is one of the most effective ways to look after your cardiovascular health...",
			Image:   "https://images.unsplash.com/photo-1606206873764-fd15e242df52",
			Summary: "A complete guide to monitoring blood pressure at home",
			Date:    "2025-06-08",
			Author:  "Dr. Ahmadi",
		},
		{
			ID:      uuid.New().String(),
			Title:   "Choosing the Right Vitamin Supplements",
			Content: "Not every supplement on the shelf is right for everyone. This guide walks through how to read labels and match supplements to your needs...",
			Image:   "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae",
			Summary: "How to pick supplements that actually help",
			Date:    "2025-07-02",
			Author:  "Store team",
		},
	}
}

func sampleServices() []*entity.Service {
	return []*entity.Service{
		{
			ID:          uuid.New().String(),
			Title:       "Special Medical Care",
			Description: "We provide the best and newest medical equipment for special care at home together with the treatment center",
			Image:       "https://images.pexels.com/photos/5214995/pexels-photo-5214995.jpeg",
			Features:    []string{"24/7 consultation", "Advanced equipment", "Specialist staff"},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Online Pharmacy",
			Description: "Order medicine and health products online with fast home delivery",
			Image:       "https://images.pexels.com/photos/3683074/pexels-photo-3683074.jpeg",
			Features:    []string{"Same-day delivery", "Pharmacist support", "Secure payment"},
		},
	}
}

func sampleDiscounts() []*entity.DiscountCode {
	return []*entity.DiscountCode{
		{
			ID:          uuid.New().String(),
			Code:        "NEWUSER20",
			Percentage:  20,
			Description: "20% discount for new customers",
			ValidUntil:  "2025-12-31",
			MinAmount:   100000,
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Code:        "SUMMER15",
			Percentage:  15,
			Description: "15% summer discount",
			ValidUntil:  "2025-09-30",
			MinAmount:   50000,
			Active:      true,
		},
	}
}
