package models

// MaxCertificates is how many certificates the site shows, newest first.
const MaxCertificates = 3

type Certificate struct {
	Title    *string `json:"title" yaml:"title"`
	Year     Text    `json:"year" yaml:"year"`
	ImageURL *string `json:"imageUrl" yaml:"imageUrl"`
}
