package shared

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"studio/shared/cache"
	"studio/shared/constant"
	"studio/shared/dto"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins key parts with a colon separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the pagination parameters
// and filters of a listing request so that distinct queries never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("p%d:l%d:s%s:%s", params.Page, params.Limit, params.SortBy, params.SortDir),
		fmt.Sprintf("%s:%v", where, args),
	)
}

// InvalidateCaches clears every cache entry sharing the given prefix.
func InvalidateCaches(ctx context.Context, cacheClient cache.RedisCache, prefix string) {
	if err := cacheClient.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
