// Package message defines the lanclip wire records.
//
// Clipboard messages travel over the sync TCP stream as newline-delimited
// JSON, one object per line:
//
//	{"type":"clipboard","contentType":"text/plain","content":"hello","timestamp":1700000000000}\n
//
// Image content is standard base64 so that every record stays on a single
// line. Discovery beacons are a single JSON object per UDP datagram.
package message

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Type identifies the kind of record.
type Type string

// TypeClipboard is the only record type on the sync stream.
const TypeClipboard Type = "clipboard"

// ContentType is the MIME type of a clipboard payload.
type ContentType string

const (
	ContentText ContentType = "text/plain"
	ContentPNG  ContentType = "image/png"
)

// Known reports whether the content type is one this protocol carries.
func (c ContentType) Known() bool {
	return c == ContentText || c == ContentPNG
}

// Message is a clipboard payload on the sync stream.
type Message struct {
	Type        Type        `json:"type"`
	ContentType ContentType `json:"contentType"`
	Content     string      `json:"content"` // UTF-8 text or base64 PNG
	Timestamp   int64       `json:"timestamp"`
}

// NewText creates a text/plain message stamped with now.
func NewText(text string, now time.Time) Message {
	return Message{
		Type:        TypeClipboard,
		ContentType: ContentText,
		Content:     text,
		Timestamp:   now.UnixMilli(),
	}
}

// NewImage creates an image/png message from raw PNG bytes.
func NewImage(png []byte, now time.Time) Message {
	return Message{
		Type:        TypeClipboard,
		ContentType: ContentPNG,
		Content:     base64.StdEncoding.EncodeToString(png),
		Timestamp:   now.UnixMilli(),
	}
}

// ImageBytes decodes the base64 payload of an image message.
func (m Message) ImageBytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(m.Content)
	if err != nil {
		return nil, &DecodeError{Field: "content", Err: err}
	}
	return b, nil
}

// DecodeError reports a record that could not be turned into a Message or
// Beacon. It is a protocol error: the record is dropped and the stream
// continues.
type DecodeError struct {
	Field string // offending field, empty when the record is not JSON
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("message decode: %v", e.Err)
	}
	return fmt.Sprintf("message decode: %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errMissing = errors.New("missing required field")

// Encode serialises m as one JSON record terminated by a single newline.
// JSON string escaping guarantees that newlines inside Content never appear
// raw in the output.
func Encode(m Message) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("message encode: %w", err)
	}
	return buf.Bytes(), nil
}

// wireMessage uses pointers so that absent fields can be told apart from
// zero values.
type wireMessage struct {
	Type        *Type        `json:"type"`
	ContentType *ContentType `json:"contentType"`
	Content     *string      `json:"content"`
	Timestamp   *int64       `json:"timestamp"`
}

// Decode parses one record. Unknown fields are ignored. A trailing newline
// is tolerated. Content of a known content type must decode for that type;
// an unknown content type is returned as-is for the caller to drop.
func Decode(line []byte) (Message, error) {
	line = bytes.TrimSpace(line)
	var w wireMessage
	if err := json.Unmarshal(line, &w); err != nil {
		return Message{}, &DecodeError{Err: err}
	}
	switch {
	case w.Type == nil:
		return Message{}, &DecodeError{Field: "type", Err: errMissing}
	case w.ContentType == nil:
		return Message{}, &DecodeError{Field: "contentType", Err: errMissing}
	case w.Content == nil:
		return Message{}, &DecodeError{Field: "content", Err: errMissing}
	case w.Timestamp == nil:
		return Message{}, &DecodeError{Field: "timestamp", Err: errMissing}
	}
	if *w.Type != TypeClipboard {
		return Message{}, &DecodeError{Field: "type", Err: fmt.Errorf("unexpected type %q", *w.Type)}
	}

	m := Message{
		Type:        *w.Type,
		ContentType: *w.ContentType,
		Content:     *w.Content,
		Timestamp:   *w.Timestamp,
	}
	switch m.ContentType {
	case ContentText:
		if !utf8.ValidString(m.Content) {
			return Message{}, &DecodeError{Field: "content", Err: errors.New("invalid UTF-8")}
		}
	case ContentPNG:
		if _, err := m.ImageBytes(); err != nil {
			return Message{}, err
		}
	}
	return m, nil
}

// Preview shortens s to at most n runes for log output.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}
