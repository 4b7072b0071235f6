package models

// Testimonial is one client quote. Rating is intended to be 1-5 but is
// stored as supplied; the admin form is the only writer.
type Testimonial struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Rating int    `json:"rating"`
}

// EntityID implements collection.Entity.
func (t Testimonial) EntityID() int { return t.ID }

// WithID implements collection.Entity.
func (t Testimonial) WithID(id int) Testimonial {
	t.ID = id
	return t
}
