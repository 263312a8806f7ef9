package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikud-go/mikud/models"
)

// fieldRule maps raw response keys onto one field of T. Keys are lower case
// and tried in order; the first non-empty value wins.
type fieldRule[T any] struct {
	keys  []string
	apply func(dst *T, raw json.RawMessage) error
}

func stringField[T any](set func(dst *T, v string), keys ...string) fieldRule[T] {
	return fieldRule[T]{
		keys: keys,
		apply: func(dst *T, raw json.RawMessage) error {
			v, err := parseString(raw)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

func intField[T any](set func(dst *T, v int), keys ...string) fieldRule[T] {
	return fieldRule[T]{
		keys: keys,
		apply: func(dst *T, raw json.RawMessage) error {
			v, err := parseInt(raw)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

var addressRules = []fieldRule[models.Address]{
	intField(func(a *models.Address, v int) { a.Zip = v }, "zip"),
	stringField(func(a *models.Address, v string) { a.CityName = v }, "city", "cityname"),
	intField(func(a *models.Address, v int) { a.CityID = v }, "cityid"),
	stringField(func(a *models.Address, v string) { a.StreetName = v }, "street", "streetname"),
	intField(func(a *models.Address, v int) { a.StreetID = v }, "streetid"),
	intField(func(a *models.Address, v int) { a.HouseNumber = v }, "housenumber", "house"),
	intField(func(a *models.Address, v int) { a.POB = v }, "pob"),
	stringField(func(a *models.Address, v string) { a.Message = v }, "messageresult"),
}

var cityRules = []fieldRule[models.City]{
	intField(func(c *models.City, v int) { c.ID = v }, "id"),
	stringField(func(c *models.City, v string) { c.Name = v }, "n", "name"),
	intField(func(c *models.City, v int) { c.Zip = v }, "zip"),
}

var streetRules = []fieldRule[models.Street]{
	intField(func(s *models.Street, v int) { s.ID = v }, "id"),
	stringField(func(s *models.Street, v string) { s.Name = v }, "n", "name"),
	intField(func(s *models.Street, v int) { s.CityID = v }, "cityid"),
}

// normalizeAddress converts the Result of an address lookup. An empty
// result yields the zero Address.
func normalizeAddress(raw json.RawMessage) (models.Address, error) {
	if isEmptyResult(raw) {
		return models.Address{}, nil
	}
	return normalizeObject(raw, addressRules)
}

func normalizeCities(raw json.RawMessage) ([]models.City, error) {
	return normalizeList(raw, cityRules)
}

func normalizeStreets(raw json.RawMessage) ([]models.Street, error) {
	return normalizeList(raw, streetRules)
}

// normalizeList converts a Result array. An empty result yields an empty,
// non-nil slice.
func normalizeList[T any](raw json.RawMessage, rules []fieldRule[T]) ([]T, error) {
	if isEmptyResult(raw) {
		return []T{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: result is not a list: %w", ErrUnexpectedResponse, err)
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := normalizeObject(item, rules)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// normalizeObject applies rules to a JSON object. Key matching is case
// insensitive; unknown keys are dropped and missing keys leave zero values.
func normalizeObject[T any](raw json.RawMessage, rules []fieldRule[T]) (T, error) {
	var out T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, fmt.Errorf("%w: result is not an object: %w", ErrUnexpectedResponse, err)
	}

	lower := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		key = strings.ToLower(key)
		if prev, ok := lower[key]; ok && !isEmptyValue(prev) {
			continue
		}
		lower[key] = value
	}

	for _, rule := range rules {
		for _, key := range rule.keys {
			value, ok := lower[key]
			if !ok || isEmptyValue(value) {
				continue
			}
			if err := rule.apply(&out, value); err != nil {
				return out, fmt.Errorf("%w: field %q: %w", ErrUnexpectedResponse, key, err)
			}
			break
		}
	}

	return out, nil
}

// isEmptyResult reports whether an envelope Result carries nothing: it is
// absent, null, false, an empty string, an empty object or an empty list.
func isEmptyResult(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// isEmptyValue reports whether a field value should be treated as absent.
func isEmptyValue(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseString accepts JSON strings and numbers.
func parseString(raw json.RawMessage) (string, error) {
	v, err := decodeScalar(raw)
	if err != nil {
		return "", err
	}

	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(t), nil
	case json.Number:
		return t.String(), nil
	}
	return "", fmt.Errorf("want string, got %s", raw)
}

// parseInt accepts JSON integers and strings holding an integer. An empty
// string is zero.
func parseInt(raw json.RawMessage) (int, error) {
	v, err := decodeScalar(raw)
	if err != nil {
		return 0, err
	}

	switch t := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		return strconv.Atoi(t.String())
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	}
	return 0, fmt.Errorf("want integer, got %s", raw)
}
