package config

type (
	Headers struct {
		// Prealloc is the initial capacity of the request headers storage.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// WriteBufferSize is the initial size of the buffer the response is serialized into.
		// It grows as much as needed to fit the whole response.
		WriteBufferSize int
	}

	HTTP struct {
		// Protocol is used in the status line of responses synthesized before the request
		// was parsed far enough to know its own protocol, e.g. on a malformed request line.
		Protocol string
	}
)

// Config holds settings used across various parts of the server, mainly buffer sizes and
// pre-allocations. Request sizes aren't limited except by the declared Content-Length.
//
// You should modify defaults (returned via Default()) instead of initializing the config
// manually, because zero values aren't always meaningful.
type Config struct {
	Headers Headers
	NET     NET
	HTTP    HTTP
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 1024,
		},
		HTTP: HTTP{
			Protocol: "HTTP/1.1",
		},
	}
}

// Fill replaces zero values of the config with defaults.
func Fill(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}

	def := Default()
	filled := *cfg
	if filled.Headers.Prealloc <= 0 {
		filled.Headers.Prealloc = def.Headers.Prealloc
	}
	if filled.NET.ReadBufferSize <= 0 {
		filled.NET.ReadBufferSize = def.NET.ReadBufferSize
	}
	if filled.NET.WriteBufferSize <= 0 {
		filled.NET.WriteBufferSize = def.NET.WriteBufferSize
	}
	if len(filled.HTTP.Protocol) == 0 {
		filled.HTTP.Protocol = def.HTTP.Protocol
	}

	return &filled
}
