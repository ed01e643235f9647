// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-rest-facade/internal/optional"
)

// PayloadKind tells which shape a decoded response body has. It is decided
// once, when the body is decoded, and never re-inspected afterwards.
type PayloadKind int

const (
	// KindNone is an absent body, a JSON null, or a body that failed to decode.
	KindNone PayloadKind = iota
	// KindText is a body that was not declared as JSON.
	KindText
	// KindRaw is a JSON value that is not an envelope: arrays, scalars and
	// objects that expose none of the code/data/msg fields.
	KindRaw
	// KindEnvelope is a JSON object exposing at least one of code/data/msg.
	KindEnvelope
)

// String implements fmt.Stringer.
func (k PayloadKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	case KindEnvelope:
		return "envelope"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Envelope is the backend's standard response wrapper { code, data, msg }.
type Envelope struct {
	// Code is the business status code. It is None when the field is
	// missing or null; any other value, including 0, is Some.
	Code optional.Value[any]

	// Data is the wrapped payload; HasData reports whether the key existed.
	Data    any
	HasData bool

	// Msg is the truthy string form of the msg field, or "" when the field
	// is missing, null, empty or otherwise falsy.
	Msg string
}

// Failed reports whether the envelope signals a business failure: the code
// is present, non-null and not the number zero.
func (e Envelope) Failed() bool {
	code, ok := e.Code.Get()
	if !ok {
		return false
	}
	return !isNumericZero(code)
}

// CodeString returns the code formatted for messages, or "" when absent.
func (e Envelope) CodeString() string {
	code, ok := e.Code.Get()
	if !ok {
		return ""
	}
	switch v := code.(type) {
	case json.Number:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Payload is a normalized response body.
type Payload struct {
	Kind PayloadKind

	// Text holds the body for KindText.
	Text string

	// Value holds the decoded JSON for KindRaw and KindEnvelope. Numbers are
	// decoded as json.Number.
	Value any

	// Envelope is populated for KindEnvelope only.
	Envelope Envelope
}

// TextPayload wraps a plain-text body.
func TextPayload(text string) Payload {
	return Payload{Kind: KindText, Text: text}
}

// ParseJSONPayload decodes body as a single JSON document and classifies it.
// On error the returned Payload has KindNone.
func ParseJSONPayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return Payload{}, fmt.Errorf("decode json body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Payload{}, errors.New("decode json body: trailing data after document")
	}

	return PayloadFromValue(value), nil
}

// PayloadFromValue classifies an already decoded JSON value.
func PayloadFromValue(value any) Payload {
	if value == nil {
		return Payload{}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return Payload{Kind: KindRaw, Value: value}
	}

	code, hasCode := obj["code"]
	data, hasData := obj["data"]
	msg, hasMsg := obj["msg"]
	if !hasCode && !hasData && !hasMsg {
		return Payload{Kind: KindRaw, Value: value}
	}

	env := Envelope{Data: data, HasData: hasData, Msg: truthyString(msg)}
	if hasCode && code != nil {
		env.Code = optional.Some(code)
	}

	return Payload{Kind: KindEnvelope, Value: value, Envelope: env}
}

// IsObject reports whether the payload is a decoded JSON object.
func (p Payload) IsObject() bool {
	_, ok := p.Value.(map[string]any)
	return ok
}

// Message returns the text body, or the envelope's msg, or "".
func (p Payload) Message() string {
	switch p.Kind {
	case KindText:
		return p.Text
	case KindEnvelope:
		return p.Envelope.Msg
	default:
		return ""
	}
}

// Decode re-decodes the payload into target. Text payloads can only be
// decoded into *string.
func (p Payload) Decode(target any) error {
	switch p.Kind {
	case KindNone:
		return ErrEmptyPayload
	case KindText:
		s, ok := target.(*string)
		if !ok {
			return fmt.Errorf("cannot decode text payload into %T", target)
		}
		*s = p.Text
		return nil
	default:
		return remarshal(p.Value, target)
	}
}

// DecodeData decodes the envelope's data field into target, falling back to
// the whole value for non-envelope payloads.
func (p Payload) DecodeData(target any) error {
	if p.Kind == KindEnvelope {
		if !p.Envelope.HasData || p.Envelope.Data == nil {
			return ErrEmptyPayload
		}
		return remarshal(p.Envelope.Data, target)
	}
	return p.Decode(target)
}

// MarshalJSON implements json.Marshaler.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindText:
		return json.Marshal(p.Text)
	case KindRaw, KindEnvelope:
		return json.Marshal(p.Value)
	default:
		return []byte("null"), nil
	}
}

// ErrEmptyPayload is returned when decoding a payload that carries nothing.
var ErrEmptyPayload = errors.New("empty payload")

func remarshal(value, target any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode payload into %T: %w", target, err)
	}
	return nil
}

func isNumericZero(v any) bool {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	case float64:
		return n == 0
	case int:
		return n == 0
	case int64:
		return n == 0
	default:
		return false
	}
}

// truthyString converts a decoded JSON value to the string it would print
// as, returning "" for falsy values (null, "", 0, false).
func truthyString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if !s {
			return ""
		}
		return "true"
	case json.Number:
		if isNumericZero(s) {
			return ""
		}
		return s.String()
	default:
		raw, err := json.Marshal(s)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
