package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPresenceStore keeps presence records in Redis with a TTL. A record
// that outlives its heartbeat expires on its own, so a crashed client decays
// to offline without cleanup work.
type RedisPresenceStore struct {
	Client *redis.Client
	TTL    time.Duration
}

const presenceKeyPrefix = "presence:"

func (s *RedisPresenceStore) Set(ctx context.Context, userID string, online bool) error {
	value := "0"
	if online {
		value = "1"
	}
	return s.Client.Set(ctx, presenceKeyPrefix+userID, value, s.TTL).Err()
}

func (s *RedisPresenceStore) Get(ctx context.Context, userID string) (bool, bool, error) {
	value, err := s.Client.Get(ctx, presenceKeyPrefix+userID).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return value == "1", true, nil
}

// PresenceService tracks and surfaces online/offline state per user. Lookup
// failures never propagate: an unknown or unreadable user reads as offline.
type PresenceService struct {
	Store PresenceStore
}

// SetSelf records the caller's own presence.
func (s *PresenceService) SetSelf(ctx context.Context, userID string, online bool) error {
	if err := s.Store.Set(ctx, userID, online); err != nil {
		return err
	}
	log.Printf("👤 Presence for %s set to %v", userID, online)
	return nil
}

// Get reports whether the user is online, defaulting to offline when no
// record exists or the store is unreachable.
func (s *PresenceService) Get(ctx context.Context, userID string) bool {
	online, found, err := s.Store.Get(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Presence lookup failed for %s, reporting offline: %v", userID, err)
		return false
	}
	if !found {
		return false
	}
	return online
}

// StartHeartbeat refreshes the user's online record on a ticker until ctx is
// cancelled, then flips it to offline best-effort. The returned channel
// closes once the loop has fully stopped.
func (s *PresenceService) StartHeartbeat(ctx context.Context, userID string, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.beat(ctx, userID, true)
		for {
			select {
			case <-ctx.Done():
				// Heartbeat ctx is gone; use a short independent deadline.
				offCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				s.beat(offCtx, userID, false)
				cancel()
				return
			case <-ticker.C:
				s.beat(ctx, userID, true)
			}
		}
	}()

	return done
}

func (s *PresenceService) beat(ctx context.Context, userID string, online bool) {
	if err := s.Store.Set(ctx, userID, online); err != nil {
		log.Printf("⚠️ Presence heartbeat failed for %s: %v", userID, err)
	}
}
