// Package cache хранит готовые результаты расчетов по ключу входных параметров.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Cache - хранилище сериализованных результатов
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key строит ключ кэша из имени инструмента и параметров запроса.
// json.Marshal сортирует ключи map, поэтому одинаковые параметры дают один ключ.
func Key(tool string, params interface{}) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return tool + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}
