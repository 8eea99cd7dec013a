package messages

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// ErrInvalidMessage is returned when a catalogue entry is not a string.
	ErrInvalidMessage = errors.New("message template must be a string")

	// ErrUnsupportedFormat is returned by ParseFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported message catalogue format")
)
