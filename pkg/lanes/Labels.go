package lanes

import (
	"golang.org/x/text/language"
)

/*
Labels holds every piece of interface text the renderers emit that does
not come from the content store.
*/
type Labels struct {
	Tag language.Tag

	SeriesTitle       string // followed by the 1-based index
	OpenSeries        string
	TagVideo          string
	TagGallery        string
	PackageTitle      string
	CertificateTitle  string
	FrameAlt          string
	OpenPhoto         string
	EmptyValue        string
	ContactPhone      string
	ContactEmail      string
	ContactInstagram  string
	ContactTelegram   string
	ContactWhatsApp   string
	ValueProfile      string
	ValueChat         string
	FallbackNotice    string
	InitFailureNotice string
	GreetingMorning   string
	GreetingDay       string
	GreetingEvening   string
	WelcomeSubtitle   string // %s is the display name
	CloseLabel        string
	PreviousLabel     string
	NextLabel         string
	WatchVideoLabel   string
	NavPortfolio      string
	NavAbout          string
	NavPricing        string
	NavCertificates   string
	NavContacts       string
	WelcomeButton     string
}

var EnglishLabels = Labels{
	Tag:               language.English,
	SeriesTitle:       "Series",
	OpenSeries:        "Open series",
	TagVideo:          "video",
	TagGallery:        "gallery",
	PackageTitle:      "Package",
	CertificateTitle:  "Certificate",
	FrameAlt:          "Frame",
	OpenPhoto:         "Open photo",
	EmptyValue:        "—",
	ContactPhone:      "Phone",
	ContactEmail:      "Email",
	ContactInstagram:  "Instagram",
	ContactTelegram:   "Telegram",
	ContactWhatsApp:   "WhatsApp",
	ValueProfile:      "profile",
	ValueChat:         "chat",
	FallbackNotice:    "Could not load content from the content store. Showing demo content. Check the project id, CORS settings and that the documents exist.",
	InitFailureNotice: "Something went wrong while starting the page. Check the logs and the project settings.",
	GreetingMorning:   "Good morning",
	GreetingDay:       "Good afternoon",
	GreetingEvening:   "Good evening",
	WelcomeSubtitle:   "Glad to see you. This is the portfolio of %s.",
	CloseLabel:        "Close",
	PreviousLabel:     "Previous",
	NextLabel:         "Next",
	WatchVideoLabel:   "Watch video",
	NavPortfolio:      "Portfolio",
	NavAbout:          "About",
	NavPricing:        "Pricing",
	NavCertificates:   "Certificates",
	NavContacts:       "Contacts",
	WelcomeButton:     "View portfolio",
}

var RussianLabels = Labels{
	Tag:               language.Russian,
	SeriesTitle:       "Серия",
	OpenSeries:        "Открыть серию",
	TagVideo:          "видео",
	TagGallery:        "галерея",
	PackageTitle:      "Пакет",
	CertificateTitle:  "Сертификат",
	FrameAlt:          "Кадр",
	OpenPhoto:         "Открыть фото",
	EmptyValue:        "—",
	ContactPhone:      "Телефон",
	ContactEmail:      "Почта",
	ContactInstagram:  "Инстаграм",
	ContactTelegram:   "Телеграм",
	ContactWhatsApp:   "WhatsApp",
	ValueProfile:      "профиль",
	ValueChat:         "чат",
	FallbackNotice:    "Не удалось загрузить данные из Sanity. Показываю демо-контент. Проверь projectId/CORS и наличие документов.",
	InitFailureNotice: "Произошла ошибка при инициализации. Проверь консоль и настройки проекта.",
	GreetingMorning:   "Доброе утро",
	GreetingDay:       "Добрый день",
	GreetingEvening:   "Добрый вечер",
	WelcomeSubtitle:   "Рада видеть вас. Здесь портфолио: %s.",
	CloseLabel:        "Закрыть",
	PreviousLabel:     "Назад",
	NextLabel:         "Вперёд",
	WatchVideoLabel:   "Смотреть видео",
	NavPortfolio:      "Портфолио",
	NavAbout:          "Обо мне",
	NavPricing:        "Цены",
	NavCertificates:   "Сертификаты",
	NavContacts:       "Контакты",
	WelcomeButton:     "Смотреть портфолио",
}

var (
	supportedLabels = []Labels{EnglishLabels, RussianLabels}
	labelMatcher    = language.NewMatcher([]language.Tag{EnglishLabels.Tag, RussianLabels.Tag})
)

/*
LabelsFor picks the label set that best matches the given preferences.
Each preference may be a single tag ("ru") or a full Accept-Language
header. Unparseable or empty preferences are skipped; English is the
fallback.
*/
func LabelsFor(preferences ...string) Labels {
	var (
		tags []language.Tag
	)

	for _, p := range preferences {
		if p == "" {
			continue
		}

		parsed, _, err := language.ParseAcceptLanguage(p)

		if err != nil {
			continue
		}

		tags = append(tags, parsed...)
	}

	if len(tags) == 0 {
		return EnglishLabels
	}

	_, index, confidence := labelMatcher.Match(tags...)

	if confidence == language.No {
		return EnglishLabels
	}

	return supportedLabels[index]
}
