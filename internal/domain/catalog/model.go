// Package catalog manages the website's published collections: the
// treatment list, the clinic gallery, and patient testimonials.
package catalog

// Treatment is a dental service offered by the clinic. IconName refers
// to the frontend icon set.
type Treatment struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Benefits        []string `json:"benefits"`
	IconName        string   `json:"iconName"`
}

func (t Treatment) RecordID() string { return t.ID }

type GalleryCategory string

const (
	CategoryInterior    GalleryCategory = "interior"
	CategoryEquipment   GalleryCategory = "equipment"
	CategoryEnvironment GalleryCategory = "environment"
)

type GalleryItem struct {
	ID       string          `json:"id"`
	URL      string          `json:"url"`
	Category GalleryCategory `json:"category"`
	Title    string          `json:"title"`
}

func (g GalleryItem) RecordID() string { return g.ID }

func (c GalleryCategory) Valid() bool {
	return c == CategoryInterior || c == CategoryEquipment || c == CategoryEnvironment
}

// Testimonial keeps Date as free text ("15 days ago") to match how
// reviews are displayed.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

func (t Testimonial) RecordID() string { return t.ID }
