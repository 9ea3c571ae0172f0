package config

// RgbhslConfig is the top-level configuration structure for rgbhsl.
type RgbhslConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Tester         TesterConfig   `yaml:"tester"`
	Server         ServerConfig   `yaml:"server"`
}

// GlobalSettings apply to every command.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn, error
}

// HueUnit selects how hue values are displayed.
type HueUnit string

const (
	// HueUnitSextant shows the raw converter value, one unit per 60 degrees.
	HueUnitSextant HueUnit = "sextant"
	// HueUnitDegrees shows hue in [0,360).
	HueUnitDegrees HueUnit = "degrees"
)

// TesterConfig configures the interactive tester, the REPL and the conversion commands.
type TesterConfig struct {
	DefaultBrightness uint8   `yaml:"defaultBrightness,omitempty"` // brightness stored by push; 0 keeps the lower layer
	HueUnit           HueUnit `yaml:"hueUnit,omitempty"`
	Precision         int     `yaml:"precision,omitempty"` // decimals printed for HSL values
}

const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportSSE serves MCP over Server-Sent Events.
	TransportSSE = "sse"
)

// ServerConfig configures the MCP server started by `rgbhsl serve`.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() RgbhslConfig {
	return RgbhslConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
		},
		Tester: TesterConfig{
			DefaultBrightness: 255,
			HueUnit:           HueUnitSextant,
			Precision:         4,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
	}
}
