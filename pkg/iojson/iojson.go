// iojson are utilities for writing JSON IO from a command line
// interface perspective
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the standard error format type that is returned when errors
// happen.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	// Use json.Marshal to properly escape strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError builds the JSON error blob. If marshaling fails it falls
// back to a hand-built blob carrying the marshaling error.
func MarshalError(msg string, data map[string]any) string {
	resp := Error{Message: msg, Data: data}

	bits, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}

	return string(bits)
}

// WriteErrorTo writes a JSON error blob to w.
func WriteErrorTo(w io.Writer, str string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(str, data))
	return err
}

// WriteWith writes obj as indented JSON to w, reporting marshal errors on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		errStr := jsonError("error marshaling in iojson.Write", err)
		_, err = fmt.Fprintln(ew, errStr)
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line to w.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}
