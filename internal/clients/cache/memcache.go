package cache

import (
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
	"max.ks1230/expenses-ledger/internal/model/aggregate"
)

const keyPrefix = "summary:"

// ErrMiss is returned by GetSummary when nothing is cached for the key.
var ErrMiss = memcache.ErrCacheMiss

type config interface {
	Hosts() []string
	TTL() time.Duration
}

type client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// SummaryCache stores computed summaries per user and reference day.
type SummaryCache struct {
	client client
	ttl    int32
}

func NewMemcache(config config) (*SummaryCache, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &SummaryCache{client: mc, ttl: int32(config.TTL().Seconds())}, mc.Ping()
}

func formatKey(user expense.User, day string) string {
	return keyPrefix + string(user) + ":" + day
}

// versionKey holds a counter bumped on every mutation so stale summaries of
// any reference day stop being addressed.
func versionKey(user expense.User) string {
	return keyPrefix + string(user) + ":version"
}

func (mc *SummaryCache) version(user expense.User) (string, error) {
	item, err := mc.client.Get(versionKey(user))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *SummaryCache) CacheSummary(user expense.User, day string, summary aggregate.Summary) error {
	logger.Info("cache summary", zap.String("user", string(user)), zap.String("day", day))
	v, err := mc.version(user)
	if err != nil {
		return errors.Wrap(err, "cache summary")
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "cache summary")
	}
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(user, day) + ":" + v,
		Value:      raw,
		Expiration: mc.ttl,
	})
}

func (mc *SummaryCache) GetSummary(user expense.User, day string) (aggregate.Summary, error) {
	logger.Info("get summary from cache", zap.String("user", string(user)), zap.String("day", day))
	v, err := mc.version(user)
	if err != nil {
		return aggregate.Summary{}, err
	}
	item, err := mc.client.Get(formatKey(user, day) + ":" + v)
	if err != nil {
		return aggregate.Summary{}, err
	}
	var summary aggregate.Summary
	if err = json.Unmarshal(item.Value, &summary); err != nil {
		return aggregate.Summary{}, errors.Wrap(err, "decode cached summary")
	}
	return summary, nil
}

func (mc *SummaryCache) InvalidateUser(user expense.User) error {
	logger.Info("invalidate cache", zap.String("user", string(user)))

	_, err := mc.client.Increment(versionKey(user), 1)
	if !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	err = mc.client.Add(&memcache.Item{Key: versionKey(user), Value: []byte("1")})
	if !errors.Is(err, memcache.ErrNotStored) {
		return err
	}
	// A concurrent invalidation created the counter first; bump it past that.
	_, err = mc.client.Increment(versionKey(user), 1)
	return err
}
