package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/TurnIt/internal/domain"
)

const cacheKeyPrefix = "turnit:geocode:"

// Результаты обращения к кэшу для метрики geocode_cache_total
const (
	cacheResultHit   = "hit"
	cacheResultMiss  = "miss"
	cacheResultError = "error"
)

// CachedGeocoder кэширует ответы геокодера в Redis
// Кэшируется и отсутствие результата; ошибки провайдера не кэшируются
type CachedGeocoder struct {
	next    Geocoder
	client  *redis.Client
	ttl     time.Duration
	metrics CacheMetrics
	log     Logger
}

// NewCachedGeocoder оборачивает geocoder кэшем; metrics может быть nil
func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, metrics CacheMetrics, log Logger) *CachedGeocoder {
	return &CachedGeocoder{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	normalized := NormalizeAddress(address)
	if normalized == "" {
		return nil, nil
	}
	key := cacheKeyPrefix + normalized

	data, err := g.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedLocation
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			g.observe(cacheResultHit)
			if !cached.Found {
				return nil, nil
			}
			return &domain.Location{Lat: cached.Lat, Lng: cached.Lng}, nil
		}
		g.log.Warn("CachedGeocoder.Geocode: corrupt cache entry key=%s", key)
		g.observe(cacheResultError)
	case errors.Is(err, redis.Nil):
		g.observe(cacheResultMiss)
	default:
		g.log.Warn("CachedGeocoder.Geocode: redis get failed key=%s: %v", key, err)
		g.observe(cacheResultError)
	}

	location, err := g.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	entry := cachedLocation{Found: location != nil}
	if location != nil {
		entry.Lat = location.Lat
		entry.Lng = location.Lng
	}

	payload, err := json.Marshal(entry)
	if err == nil {
		if err := g.client.Set(ctx, key, payload, g.ttl).Err(); err != nil {
			g.log.Warn("CachedGeocoder.Geocode: redis set failed key=%s: %v", key, err)
		}
	}

	return location, nil
}

func (g *CachedGeocoder) observe(result string) {
	if g.metrics != nil {
		g.metrics.IncGeocodeCache(result)
	}
}

// NormalizeAddress приводит адрес к ключу кэша: нижний регистр, одиночные пробелы
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
