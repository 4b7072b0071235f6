package models

// BlogPost is one entry in the blog collection. The date is a free-text
// display string ("March 15, 2025"), not a parsed timestamp.
type BlogPost struct {
	ID       int      `json:"id"`
	Image    string   `json:"image"`
	Images   []string `json:"images,omitempty"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Alt      string   `json:"alt"`
	ReadTime string   `json:"readTime,omitempty"`
}

// EntityID implements collection.Entity.
func (b BlogPost) EntityID() int { return b.ID }

// WithID implements collection.Entity.
func (b BlogPost) WithID(id int) BlogPost {
	b.ID = id
	return b
}
