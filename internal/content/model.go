package content

import (
	"strconv"
	"time"
)

// SiteInfo is the site-wide singleton: artist name, contact, and metadata.
type SiteInfo struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Instagram Instagram `json:"instagram"`
	Metadata  Metadata  `json:"metadata"`
}

type Instagram struct {
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Artwork is one gallery entry. Year is free text ("2024", "c. 2020"), and
// ImageURL is an external URL, a root-relative path, or an inline data URL.
type Artwork struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Year       string `json:"year"`
	Medium     string `json:"medium"`
	Dimensions string `json:"dimensions"`
	ImageURL   string `json:"imageUrl"`
}

type CVSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// AboutContent holds the about page: portrait, bio, statement, CV.
type AboutContent struct {
	PortraitURL         string      `json:"portraitUrl"`
	BioParagraphs       []string    `json:"bioParagraphs"`
	StatementParagraphs []string    `json:"statementParagraphs"`
	CVSections          []CVSection `json:"cvSections"`
}

// MintArtworkID returns an id distinct from every id in existing. Ids are
// the creation time in unix milliseconds; on the (local, single-user) chance
// of a collision the candidate is bumped until free.
func MintArtworkID(existing []Artwork) string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !hasID(existing, id) {
			return id
		}
		n++
	}
}

func hasID(works []Artwork, id string) bool {
	for _, w := range works {
		if w.ID == id {
			return true
		}
	}
	return false
}
