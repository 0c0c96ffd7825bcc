package configuration

import "github.com/adampresley/configinator"

type Config struct {
	ContentBaseURL   string `flag:"contentbaseurl" env:"CONTENT_BASE_URL" default:"" description:"Overrides the content store API host. Leave empty to use the public Sanity CDN"`
	CookieSecret     string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	FallbackDelayMs  int    `flag:"fallbackdelay" env:"FALLBACK_DELAY_MS" default:"200" description:"Milliseconds to wait before showing default content after a failed load"`
	Host             string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	Locale           string `flag:"locale" env:"LOCALE" default:"ru" description:"Interface language used when the browser does not ask for one. Valid values are 'en' and 'ru'"`
	LogLevel         string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxFetchWorkers  int    `flag:"mfw" env:"MAX_FETCH_WORKERS" default:"16" description:"Maximum number of concurrent content store requests across all visitors"`
	SanityAPIVersion string `flag:"sanityapiversion" env:"SANITY_API_VERSION" default:"2025-01-01" description:"Sanity API version date"`
	SanityDataset    string `flag:"sanitydataset" env:"SANITY_DATASET" default:"production" description:"Sanity dataset to query"`
	SanityProjectID  string `flag:"sanityprojectid" env:"SANITY_PROJECT_ID" default:"REPLACE_ME" description:"Sanity project ID. 'REPLACE_ME' disables remote content"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
