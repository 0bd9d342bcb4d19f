package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int `yaml:"port" env:"SERVER_PORT" env-default:"16182" validate:"gt=0,lte=65535"`
	MaxBodyBytes   int `yaml:"maxBodyBytes" env:"SERVER_MAX_BODY_BYTES" env-default:"4194304" validate:"gt=0"`
	ReadTimeoutMS  int `yaml:"readTimeoutMS" env:"SERVER_READ_TIMEOUT_MS" env-default:"10000" validate:"gte=0"`
	WriteTimeoutMS int `yaml:"writeTimeoutMS" env:"SERVER_WRITE_TIMEOUT_MS" env-default:"30000" validate:"gte=0"`
}

// OTPConfig points at the upstream trip query result
type OTPConfig struct {
	TripQueryURL string `yaml:"tripQueryURL" env:"OTP_TRIP_QUERY_URL" validate:"omitempty,url|file"`
	TimeoutMS    int    `yaml:"timeoutMS" env:"OTP_TIMEOUT_MS" env-default:"5000" validate:"gte=0"`
}

// ViewConfig contains presentation settings of the itinerary list
type ViewConfig struct {
	Heading string `yaml:"heading" env:"VIEW_HEADING" env-default:"Itineraries"`
	Width   string `yaml:"width" env:"VIEW_WIDTH" env-default:"36rem"`

	// PDFFontPath is a UTF-8 TrueType font for PDF output; without it the PDF
	// is limited to the cp1252 code page
	PDFFontPath string `yaml:"pdfFontPath" env:"VIEW_PDF_FONT_PATH" validate:"omitempty,file"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn warning error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	OTP    OTPConfig    `yaml:"otp"`
	View   ViewConfig   `yaml:"view"`
	Log    LogConfig    `yaml:"log"`
}
