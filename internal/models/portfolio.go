package models

// PortfolioItem is one artwork in the portfolio collection.
// Field names mirror the JSON documents the site serves.
type PortfolioItem struct {
	ID          int      `json:"id"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	Alt         string   `json:"alt"`
	Category    string   `json:"category"`
	Year        string   `json:"year,omitempty"`
	Medium      string   `json:"medium,omitempty"`
	Dimensions  string   `json:"dimensions,omitempty"`
}

// EntityID implements collection.Entity.
func (p PortfolioItem) EntityID() int { return p.ID }

// WithID implements collection.Entity.
func (p PortfolioItem) WithID(id int) PortfolioItem {
	p.ID = id
	return p
}
