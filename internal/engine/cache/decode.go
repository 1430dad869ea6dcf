package cache

import (
	"bytes"
	"unicode/utf8"

	"go.trai.ch/quire/internal/core/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeUTF8 strips a leading UTF-8 byte order mark and validates the rest.
func DecodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", domain.NewFileError(domain.KindInvalidEncoding, "", nil)
	}
	return string(data), nil
}

// sourceDecoder decodes text for id, editing the previous revision when there is one.
func sourceDecoder(id domain.ResourceID) Decoder[*domain.Source] {
	return func(data []byte, prev *domain.Source, hasPrev bool) (*domain.Source, error) {
		text, err := DecodeUTF8(data)
		if err != nil {
			return nil, domain.NewFileError(domain.KindInvalidEncoding, id.String(), nil)
		}
		if hasPrev && prev != nil {
			return prev.Replace(text), nil
		}
		return domain.NewSource(id, text), nil
	}
}

func bytesDecoder(data []byte, _ domain.Bytes, _ bool) (domain.Bytes, error) {
	return domain.NewBytes(data), nil
}
