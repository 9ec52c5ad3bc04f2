package config

// Log configures the stderr logger. Level uses charmbracelet/log values:
// -4 debug, 0 info, 4 warn, 8 error.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[atm]"`
}

// Terminal configures how the console talks to the user.
type Terminal struct {
	// MaskPin hides PIN echo when stdin is a terminal.
	MaskPin bool `envconfig:"MASK_PIN" default:"true"`
	// Color enables colored output when stdout is a terminal.
	Color bool `envconfig:"COLOR" default:"true"`
}

// App is the application configuration loaded by Load.
type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	Terminal *Terminal `envconfig:"TERMINAL"`
}
