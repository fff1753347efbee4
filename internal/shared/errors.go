package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// startup errors
const ErrStartup = Error("startup failed")

// config errors
const (
	ErrInvalidPort      = Error("port must be between 1 and 65535")
	ErrEmptyGreeting    = Error("greeting message must not be empty")
	ErrInvalidLogFormat = Error("log format must be 'json' or 'text'")
	ErrInvalidLogLevel  = Error("log level must be one of trace, debug, info, warn, error")
	ErrInvalidDuration  = Error("invalid duration")
	ErrInvalidAccessLog = Error("access log setting must be a boolean")
)

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
	ErrConfigExists = Error("config file already exists")
)
