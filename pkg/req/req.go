package req

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Максимальный размер тела запроса
const maxBodySize = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

// Decode читает json тело запроса в T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, ErrEmptyBody
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return payload, fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return payload, ErrEmptyBody
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("decode body: %w", err)
	}
	return payload, nil
}
