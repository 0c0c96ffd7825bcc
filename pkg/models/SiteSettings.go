package models

type SiteSettings struct {
	PhotographerName     *string  `json:"photographerName" yaml:"photographerName"`
	AboutText            *string  `json:"aboutText" yaml:"aboutText"`
	PhotographerPhotoURL *string  `json:"photographerPhotoUrl" yaml:"photographerPhotoUrl"`
	LocationsText        *string  `json:"locationsText" yaml:"locationsText"`
	Contacts             Contacts `json:"contacts" yaml:"contacts"`
}

type Contacts struct {
	Phone     *string `json:"phone" yaml:"phone"`
	Email     *string `json:"email" yaml:"email"`
	Instagram *string `json:"instagram" yaml:"instagram"`
	Telegram  *string `json:"telegram" yaml:"telegram"`
	WhatsApp  *string `json:"whatsapp" yaml:"whatsapp"`
}

/*
Clone returns a deep copy so callers can hand settings to a renderer
without sharing pointers into the original.
*/
func (s SiteSettings) Clone() SiteSettings {
	return SiteSettings{
		PhotographerName:     cloneString(s.PhotographerName),
		AboutText:            cloneString(s.AboutText),
		PhotographerPhotoURL: cloneString(s.PhotographerPhotoURL),
		LocationsText:        cloneString(s.LocationsText),
		Contacts: Contacts{
			Phone:     cloneString(s.Contacts.Phone),
			Email:     cloneString(s.Contacts.Email),
			Instagram: cloneString(s.Contacts.Instagram),
			Telegram:  cloneString(s.Contacts.Telegram),
			WhatsApp:  cloneString(s.Contacts.WhatsApp),
		},
	}
}
