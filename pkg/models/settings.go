package models

// Settings is the singleton site-wide configuration record.
type Settings struct {
	SiteName        string `json:"siteName"        validate:"required"`
	Domain          string `json:"domain"`
	Description     string `json:"description"`
	PrimaryColor    string `json:"primaryColor"    validate:"omitempty,hexcolor"`
	AccentColor     string `json:"accentColor"     validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexcolor"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}
