// Package seed holds the sample content a fresh data directory is
// initialized with. The records are illustrative site content, not part
// of any contract; ids just have to be unique per collection.
package seed

import "atelier/internal/models"

// Portfolio returns the initial portfolio collection.
func Portfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			ID:          1,
			Image:       "/images/1.jpg",
			Title:       "Portrait Study",
			Description: "Acrylic on canvas, 2025",
			Alt:         "Portrait Study - Acrylic painting by Chughtai Arts",
			Category:    "portraits",
		},
		{
			ID:          2,
			Image:       "/images/2.png",
			Title:       "Arabic Calligraphy",
			Description: "Ink on paper, 2024",
			Alt:         "Arabic Calligraphy artwork by Chughtai Arts",
			Category:    "calligraphy",
		},
		{
			ID:          3,
			Image:       "/images/3.jpg",
			Title:       "Embroidered Fabric",
			Description: "Silk and cotton, 2025",
			Alt:         "Embroidered Fabric textile design by Chughtai Arts",
			Category:    "textiles",
		},
		{
			ID:          4,
			Image:       "/images/1.jpg",
			Title:       "Pencil Sketch",
			Description: "Graphite on paper, 2024",
			Alt:         "Pencil Sketch artwork by Chughtai Arts",
			Category:    "sketches",
		},
		{
			ID:          5,
			Image:       "/images/3.jpg",
			Title:       "Landscape Painting",
			Description: "Oil on canvas, 2025",
			Alt:         "Landscape Painting by Chughtai Arts",
			Category:    "paintings",
		},
	}
}

// Blog returns the initial blog collection.
func Blog() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       1,
			Image:    "/images/1.jpg",
			Images:   []string{"/images/1.jpg"},
			Title:    "Mastering Hand Embroidery Techniques",
			Excerpt:  "Learn the fundamental techniques of hand embroidery and how to create stunning textile designs that tell a story.",
			Content:  "Hand embroidery is an ancient art form that has been passed down through generations. In this guide we explore the fundamental techniques every embroiderer should master, from the running stitch to French knots, and the advanced work that gives textile designs their character.",
			Date:     "March 15, 2025",
			Category: "Textiles",
			Alt:      "Textile Design Techniques",
			ReadTime: "5 min read",
		},
		{
			ID:       2,
			Image:    "/images/2.png",
			Images:   []string{"/images/2.png"},
			Title:    "The Art of Arabic Calligraphy",
			Excerpt:  "Exploring the history and modern applications of Arabic calligraphy in contemporary art and design.",
			Content:  "Arabic calligraphy combines spiritual significance with aesthetic beauty. From the geometric Kufic script to the flowing Diwani, each style carries centuries of history while finding new expression in contemporary art, graphic design and digital media.",
			Date:     "March 10, 2025",
			Category: "Calligraphy",
			Alt:      "Calligraphy Art",
			ReadTime: "7 min read",
		},
	}
}

// Testimonials returns the initial testimonials collection.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:     1,
			Text:   "Museera's portrait work is absolutely stunning! She captured every detail and emotion perfectly. Highly recommend her services.",
			Author: "Sarah Ahmed",
			Role:   "Custom Portrait Client",
			Rating: 5,
		},
		{
			ID:     2,
			Text:   "The embroidered textile pieces I ordered were beyond beautiful. Excellent craftsmanship and attention to detail. Will definitely order again!",
			Author: "Fatima Khan",
			Role:   "Textile Art Client",
			Rating: 5,
		},
		{
			ID:     3,
			Text:   "The calligraphy artwork for our event was exquisite. Museera is a true artist with incredible talent and professionalism.",
			Author: "Ali Hassan",
			Role:   "Event Organizer",
			Rating: 5,
		},
	}
}

// Settings returns the initial site settings record.
func Settings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:        "Chughtai Arts",
		SiteDescription: "Fine Arts portfolio featuring portraits, paintings, textiles, calligraphy, crochet, and jewelry by Museera Aftab.",
		Email:           "info@chughtaiarts.com",
		Phone:           "+92 300 123 4567",
		Address:         "Bahawalpur, Pakistan",
		SocialLinks: models.SocialLinks{
			Instagram: "https://instagram.com/chughtaiarts",
			Twitter:   "https://twitter.com/chughtaiarts",
			LinkedIn:  "https://linkedin.com/in/chughtaiarts",
		},
	}
}
