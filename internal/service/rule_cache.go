package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"personnel/internal/clients"
	"personnel/internal/payroll"

	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=rule_cache.go -destination=../mocks/rule_cache.go -package=mocks

// KeyValueStore is the subset of the redis client the rule cache needs.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// RuleCache keeps rule-version snapshots per jurisdiction.
//
// Snapshots are stored under the generation current when the caller started reading
// the database. Invalidate moves the jurisdiction to a new generation, so a snapshot
// loaded before a rule change can never be served after it.
type RuleCache interface {
	// Get returns the cached versions and the current generation.
	// On ErrCacheMiss the generation is still valid and can be passed to Set.
	Get(ctx context.Context, jurisdiction string) ([]payroll.RuleVersion, int64, error)
	Set(ctx context.Context, jurisdiction string, generation int64, versions []payroll.RuleVersion) error
	Invalidate(ctx context.Context, jurisdictions ...string) error
}

type cachedRuleVersion struct {
	ID              string          `json:"id"`
	EffectiveFrom   string          `json:"effective_from"`
	ResidentRate    decimal.Decimal `json:"resident_rate"`
	NonResidentRate decimal.Decimal `json:"non_resident_rate"`
}

type redisRuleCache struct {
	store KeyValueStore
	ttl   time.Duration
}

func NewRedisRuleCache(store KeyValueStore, ttl time.Duration) RuleCache {
	return &redisRuleCache{store: store, ttl: ttl}
}

func ruleGenerationKey(jurisdiction string) string {
	return "payroll_rules:" + jurisdiction + ":gen"
}

func ruleCacheKey(jurisdiction string, generation int64) string {
	return "payroll_rules:" + jurisdiction + ":" + strconv.FormatInt(generation, 10)
}

func (c *redisRuleCache) generation(ctx context.Context, jurisdiction string) (int64, error) {
	raw, err := c.store.Get(ctx, ruleGenerationKey(jurisdiction))
	if errors.Is(err, clients.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("rule cache generation %q: %w", raw, err)
	}
	return gen, nil
}

func (c *redisRuleCache) Get(ctx context.Context, jurisdiction string) ([]payroll.RuleVersion, int64, error) {
	gen, err := c.generation(ctx, jurisdiction)
	if err != nil {
		return nil, 0, err
	}

	raw, err := c.store.Get(ctx, ruleCacheKey(jurisdiction, gen))
	if err != nil {
		return nil, gen, err
	}

	// an unreadable entry is replaced like a missing one
	var cached []cachedRuleVersion
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, gen, fmt.Errorf("%w: %v", clients.ErrCacheMiss, err)
	}

	versions := make([]payroll.RuleVersion, 0, len(cached))
	for _, v := range cached {
		from, err := payroll.ParseDate(v.EffectiveFrom)
		if err != nil {
			return nil, gen, fmt.Errorf("%w: %v", clients.ErrCacheMiss, err)
		}
		versions = append(versions, payroll.RuleVersion{
			ID:              v.ID,
			EffectiveFrom:   from,
			ResidentRate:    v.ResidentRate,
			NonResidentRate: v.NonResidentRate,
		})
	}
	return versions, gen, nil
}

func (c *redisRuleCache) Set(ctx context.Context, jurisdiction string, generation int64, versions []payroll.RuleVersion) error {
	cached := make([]cachedRuleVersion, 0, len(versions))
	for _, v := range versions {
		cached = append(cached, cachedRuleVersion{
			ID:              v.ID,
			EffectiveFrom:   v.EffectiveFrom.Format(payroll.DateLayout),
			ResidentRate:    v.ResidentRate,
			NonResidentRate: v.NonResidentRate,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, ruleCacheKey(jurisdiction, generation), raw, c.ttl)
}

// Invalidate bumps the generation of every jurisdiction and drops the entry of the previous one.
// Older entries that a slow reader writes afterwards are never read and expire with the TTL.
func (c *redisRuleCache) Invalidate(ctx context.Context, jurisdictions ...string) error {
	var errs []error
	stale := make([]string, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		gen, err := c.store.Incr(ctx, ruleGenerationKey(j))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j, err))
			continue
		}
		stale = append(stale, ruleCacheKey(j, gen-1))
	}
	if len(stale) > 0 {
		if err := c.store.Del(ctx, stale...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type noopRuleCache struct{}

// NewNoopRuleCache is used when no redis is configured; every lookup misses.
func NewNoopRuleCache() RuleCache { return noopRuleCache{} }

func (noopRuleCache) Get(context.Context, string) ([]payroll.RuleVersion, int64, error) {
	return nil, 0, errCacheDisabled
}
func (noopRuleCache) Set(context.Context, string, int64, []payroll.RuleVersion) error { return nil }
func (noopRuleCache) Invalidate(context.Context, ...string) error                     { return nil }
