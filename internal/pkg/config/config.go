package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of various
// types. Implementations of this interface should handle the retrieval and type
// conversion of configuration data, providing default behaviors or error
// handling as necessary.
type Config interface {
	io.Closer

	// GetSecond retrieves the configuration value associated with the given key as seconds.
	// If the key does not exist or the value cannot be converted to an integer,
	// the implementation should handle it accordingly (e.g., return a default value).
	GetSecond(key string) time.Duration

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the configuration value associated with the given key as an int32.
	GetInt32(key string) int32

	// GetUint retrieves the configuration value associated with the given key as a uint.
	GetUint(key string) uint

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetBinary retrieves the configuration value associated with the given key as a byte
	// slice. Configuration value is stored as base64 encoded.
	GetBinary(key string) []byte

	// GetArray retrieves the configuration value associated with the given key as a slice
	// of strings. Configuration value is stored with format <element1>,<element2>,...
	GetArray(key string) []string
}
