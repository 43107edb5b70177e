package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// FeedService проксирует погоду и новости от внешних сервисов с кэшированием в Redis
type FeedService interface {
	Weather(ctx context.Context, latitude, longitude string) ([]byte, error)
	News(ctx context.Context, locality string) ([]byte, error)
}

type feedService struct {
	weather WeatherClient
	news    NewsClient
	cache   UpstreamCache
	ttl     time.Duration
	logger  *logrus.Logger
}

func NewFeedService(weather WeatherClient, news NewsClient, cache UpstreamCache, ttl time.Duration, logger *logrus.Logger) FeedService {
	return &feedService{
		weather: weather,
		news:    news,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

func (s *feedService) Weather(ctx context.Context, latitude, longitude string) ([]byte, error) {
	latitude, longitude = strings.TrimSpace(latitude), strings.TrimSpace(longitude)
	if latitude == "" || longitude == "" {
		return nil, fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}

	key := fmt.Sprintf("weather:%s:%s", latitude, longitude)
	return s.cached(ctx, "Weather", key, func() ([]byte, error) {
		return s.weather.Current(ctx, latitude, longitude)
	})
}

func (s *feedService) News(ctx context.Context, locality string) ([]byte, error) {
	locality = strings.TrimSpace(locality)
	if locality == "" {
		return nil, fmt.Errorf("%w: locality is required", ErrValidation)
	}

	key := "news:" + strings.ToLower(locality)
	return s.cached(ctx, "News", key, func() ([]byte, error) {
		return s.news.Articles(ctx, locality)
	})
}

// cached - cache-aside: ошибки кэша только логируются, запрос уходит во внешний сервис
func (s *feedService) cached(ctx context.Context, method, key string, fetch func() ([]byte, error)) ([]byte, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "feed",
		"method":  method,
		"key":     key,
	})

	if s.cache != nil {
		body, err := s.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Failed to read upstream response from cache")
		} else if body != nil {
			log.Debug("Upstream response found in cache")
			return body, nil
		}
	}

	body, err := fetch()
	if err != nil {
		log.WithError(err).Error("Upstream request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to store upstream response in cache")
		}
	}
	return body, nil
}
