package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

const statusCacheTTL = 15 * time.Second

// StatusService produces live availability snapshots. The generator stands in
// for the real occupancy feed; snapshots are cached in redis when a client is
// configured so repeated polls within the TTL see a stable view.
type StatusService struct {
	cache  *redis.Client
	logger *zap.Logger
	now    func() time.Time
	intn   func(n int) int
}

// NewStatusService builds the service. cache may be nil.
func NewStatusService(cache *redis.Client, logger *zap.Logger) *StatusService {
	return &StatusService{
		cache:  cache,
		logger: logger,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

func statusKey(stationID string) string {
	return fmt.Sprintf("stations:status:%s", stationID)
}

// Status returns the current snapshot for a station.
func (s *StatusService) Status(ctx context.Context, stationID string) (models.StationStatus, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statusKey(stationID)).Result(); err == nil {
			var status models.StationStatus
			if err := json.Unmarshal([]byte(cached), &status); err == nil {
				return status, nil
			}
		}
	}

	status := models.StationStatus{
		StationID:   stationID,
		Available:   s.intn(6) + 1,
		Total:       6,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
		Occupancy:   s.intn(100),
		AvgWaitMins: s.intn(30),
	}

	if s.cache != nil {
		data, err := json.Marshal(status)
		if err == nil {
			if err := s.cache.Set(ctx, statusKey(stationID), data, statusCacheTTL).Err(); err != nil {
				s.logger.Warn("status cache write failed", zap.String("station_id", stationID), zap.Error(err))
			}
		}
	}

	return status, nil
}
