package redis

import (
	"context"
	"errors"

	"github.com/kailas-cloud/wainnrooh/internal/db"
)

// PushUnique moves value to the head of the list at key and trims the list to
// capacity. LREM, LPUSH and LTRIM run inside MULTI/EXEC so concurrent writers
// on other instances never observe a duplicate or an overlong list.
func (s *Store) PushUnique(ctx context.Context, key, value string, capacity int) error {
	if capacity <= 0 {
		return &db.Error{Op: db.OpPushUnique, Err: errors.New("capacity must be positive")}
	}

	resps := s.client.DoMulti(ctx,
		s.b().Multi().Build(),
		s.b().Lrem().Key(key).Count(0).Element(value).Build(),
		s.b().Lpush().Key(key).Element(value).Build(),
		s.b().Ltrim().Key(key).Start(0).Stop(int64(capacity-1)).Build(),
		s.b().Exec().Build(),
	)
	for _, resp := range resps {
		if err := resp.Error(); err != nil {
			return &db.Error{Op: db.OpPushUnique, Err: err}
		}
	}

	// Command errors such as WRONGTYPE surface inside the EXEC reply.
	queued, err := resps[len(resps)-1].ToArray()
	if err != nil {
		return &db.Error{Op: db.OpPushUnique, Err: err}
	}
	for _, msg := range queued {
		if err := msg.Error(); err != nil {
			return &db.Error{Op: db.OpPushUnique, Err: err}
		}
	}
	return nil
}

// Range returns up to limit elements from the head of the list. limit <= 0 returns all.
func (s *Store) Range(ctx context.Context, key string, limit int) ([]string, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	cmd := s.b().Lrange().Key(key).Start(0).Stop(stop).Build()
	list, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpRange, Err: err}
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
