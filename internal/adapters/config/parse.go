package config

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/zerr"
)

// Bounds of a representable creation timestamp, in seconds since the UNIX epoch.
const (
	minTimestamp int64 = -8334601228800
	maxTimestamp int64 = 8210266876799
)

// ParseTimestamp parses a decimal UNIX timestamp as used by SOURCE_DATE_EPOCH.
func ParseTimestamp(raw string) (time.Time, error) {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidTimestamp.Error()), "timestamp", raw)
	}
	if seconds < minTimestamp || seconds > maxTimestamp {
		return time.Time{}, zerr.With(domain.ErrTimestampOutOfRange, "timestamp", raw)
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// ParseInputPair parses "key=value". Both sides are trimmed and the key must not be empty.
func ParseInputPair(raw string) (key, value string, err error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", zerr.With(domain.ErrInvalidInputPair, "input", raw)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", zerr.With(domain.ErrEmptyInputKey, "input", raw)
	}
	return key, strings.TrimSpace(value), nil
}

// ParseInputPairs parses every pair into a map. Later pairs override earlier ones.
func ParseInputPairs(raw []string) (map[string]string, error) {
	inputs := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, err := ParseInputPair(pair)
		if err != nil {
			return nil, err
		}
		inputs[key] = value
	}
	return inputs, nil
}
