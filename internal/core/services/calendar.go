package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

// CalendarEntry is one occupied span on a room's public calendar.
type CalendarEntry struct {
	CheckIn  time.Time                `json:"check_in"`
	CheckOut time.Time                `json:"check_out"`
	Status   domain.ReservationStatus `json:"status"`
}

func calendarKey(roomID uuid.UUID) string {
	return fmt.Sprintf("rooms:%s:calendar", roomID)
}

func calendarVersionKey(roomID uuid.UUID) string {
	return fmt.Sprintf("rooms:%s:calendar:version", roomID)
}

// cachedCalendar carries the version that was current before the store was
// read. A snapshot whose version has since been bumped is never served.
type cachedCalendar struct {
	Version int64           `json:"version"`
	Entries []CalendarEntry `json:"entries"`
}

// calendarCache is best effort: a nil client or a redis failure degrades to
// a miss and never fails the caller.
type calendarCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// get returns the cached calendar on a hit. On a miss it returns the version
// to stamp on the snapshot the caller is about to build.
func (c *calendarCache) get(ctx context.Context, roomID uuid.UUID) ([]CalendarEntry, int64, bool) {
	if c.client == nil {
		return nil, 0, false
	}

	vals, err := c.client.MGet(ctx, calendarKey(roomID), calendarVersionKey(roomID)).Result()
	if err != nil || len(vals) != 2 {
		c.log.Warn("calendar cache read failed", "room_id", roomID, "error", err)
		return nil, 0, false
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		c.log.Warn("calendar cache version corrupt", "room_id", roomID, "error", err)
		return nil, 0, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}

	var cached cachedCalendar
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		c.log.Warn("calendar cache entry corrupt", "room_id", roomID, "error", err)
		return nil, version, false
	}

	if cached.Version != version {
		return nil, version, false
	}

	return cached.Entries, version, true
}

func (c *calendarCache) set(ctx context.Context, roomID uuid.UUID, version int64, entries []CalendarEntry) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(cachedCalendar{Version: version, Entries: entries})
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, calendarKey(roomID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("calendar cache write failed", "room_id", roomID, "error", err)
	}
}

// invalidate bumps the room's version, so a snapshot built from a read that
// raced this write is rejected on the next get instead of living out its TTL.
func (c *calendarCache) invalidate(ctx context.Context, roomID uuid.UUID) {
	if c.client == nil {
		return
	}

	if err := c.client.Incr(ctx, calendarVersionKey(roomID)).Err(); err != nil {
		c.log.Warn("calendar cache invalidation failed", "room_id", roomID, "error", err)
	}
}

func parseVersion(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	case int64:
		return val, nil
	}

	return 0, fmt.Errorf("unexpected version type %T", v)
}
