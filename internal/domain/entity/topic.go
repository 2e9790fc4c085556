package entity

// Topic is a subject articles are filed under. Slug is unique.
type Topic struct {
	Slug        string
	Description string
}
