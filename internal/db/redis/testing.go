package redis

import "github.com/redis/rueidis"

// NewStoreForTest wraps a rueidis client, usually a mock, with the default
// ready poll so WaitForReady tests stay fast.
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c, readyPoll: DefaultReadyPoll}
}
