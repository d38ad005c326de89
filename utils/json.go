package utils

import (
	"encoding/json"
)

// Marshal generic struct to JSON
func MarshalToJSON[T any](input T) (string, error) {
	jsonData, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// Marshal generic struct to indented JSON, the way the fixture files are
// kept on disk (the originals were written with a two-space indent).
func MarshalToIndentedJSON[T any](input T) ([]byte, error) {
	return json.MarshalIndent(input, "", "  ")
}

// Unmarshal JSON to generic struct
func UnmarshalFromJSON[T any](data []byte, output *T) error {
	return json.Unmarshal(data, output)
}
