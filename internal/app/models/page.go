package models

// Page is the structured content of a public site page. Pages are
// compiled-in; rendering is left to the client.
type Page struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Tagline  string        `json:"tagline,omitempty"`
	Sections []PageSection `json:"sections"`
}

// PageSection groups related content under a heading
type PageSection struct {
	Heading string     `json:"heading"`
	Body    string     `json:"body,omitempty"`
	Items   []PageItem `json:"items,omitempty"`
}

// PageItem is a single entry inside a section (a service, product, industry...)
type PageItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
