package config

import "time"

type Config struct {
	Env             string           `yaml:"env" env:"ENV" env-default:"local"`
	HttpServer      HttpServerConfig `yaml:"httpServer"`
	DBConfig        DBConfig         `yaml:"db"`
	WeezeventConfig WeezeventConfig  `yaml:"weezevent"`
}

type HttpServerConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	Secret  string        `yaml:"secret" env:"HTTP_SECRET" env-default:"secret"`
}

type DBConfig struct {
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name         string `yaml:"name" env:"DB_NAME" env-default:"postgres"`
	User         string `yaml:"user" env:"DB_USER" env-default:"user"`
	Password     string `yaml:"password" env:"DB_PASSWORD" env-default:"password"`
	MaxOpenConns int    `yaml:"maxOpenConns" env:"DB_MAX_OPEN_CONNS" env-default:"5"`
}

// WeezeventConfig describes access to the Weezevent API.
// FinalPriceField is the name of the field holding the final paid price in
// the participant/list payload. The exact upstream name is unknown; an empty
// value disables step 1 of amount resolution (only the base-price fallback
// remains).
type WeezeventConfig struct {
	BaseURL            string        `yaml:"baseUrl" env:"WEEZEVENT_BASE_URL" env-default:"https://api.weezevent.com"`
	ApiKey             string        `yaml:"apiKey" env:"WEEZEVENT_API_KEY" env-default:""`
	Username           string        `yaml:"username" env:"WEEZEVENT_USERNAME" env-default:""`
	Password           string        `yaml:"password" env:"WEEZEVENT_PASSWORD" env-default:""`
	FinalPriceField    string        `yaml:"finalPriceField" env:"WEEZEVENT_FINAL_PRICE_FIELD" env-default:""`
	CancelledStatusID  int           `yaml:"cancelledStatusId" env:"WEEZEVENT_CANCELLED_STATUS_ID" env-default:"4"`
	TokenTimeout       time.Duration `yaml:"tokenTimeout" env:"WEEZEVENT_TOKEN_TIMEOUT" env-default:"10s"`
	EventsTimeout      time.Duration `yaml:"eventsTimeout" env:"WEEZEVENT_EVENTS_TIMEOUT" env-default:"20s"`
	TicketsTimeout     time.Duration `yaml:"ticketsTimeout" env:"WEEZEVENT_TICKETS_TIMEOUT" env-default:"20s"`
	ParticipantTimeout time.Duration `yaml:"participantTimeout" env:"WEEZEVENT_PARTICIPANT_TIMEOUT" env-default:"45s"`
	AnswersTimeout     time.Duration `yaml:"answersTimeout" env:"WEEZEVENT_ANSWERS_TIMEOUT" env-default:"15s"`
}
