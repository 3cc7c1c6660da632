package cmd

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hyprland-community/hyprmon/internal/hypr"
	"github.com/hyprland-community/hyprmon/internal/state"
)

// cacheKey identifies a unique projection scope.
type cacheKey struct {
	Kind            state.Kind
	Monitor         string
	Special         string
	Workspace       string
	ClientMonitor   string
	RuleFingerprint string
	RulesSupplied   bool
}

// cacheEntry holds a cached projection with its timestamp.
type cacheEntry struct {
	result    interface{}
	timestamp time.Time
}

// queryCache provides a TTL-based cache for projection results, so a
// burst of tool calls does not hammer the query socket.
type queryCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// newQueryCache creates a new cache. A ttl of 0 disables caching.
func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
	}
}

// project returns a cached projection if within TTL, otherwise
// queries and projects fresh.
func (c *queryCache) project(kind state.Kind, workspace state.WorkspaceFilter, client state.ClientFilter, rules []hypr.WorkspaceRule) (interface{}, error) {
	if c.ttl == 0 {
		return project(kind, workspace, client, rules)
	}

	key := cacheKey{
		Kind:            kind,
		Monitor:         workspace.Monitor,
		Workspace:       client.Workspace,
		ClientMonitor:   client.Monitor,
		RuleFingerprint: ruleFingerprint(rules),
		RulesSupplied:   rules != nil,
	}
	if workspace.Special != nil {
		if *workspace.Special {
			key.Special = "special"
		} else {
			key.Special = "regular"
		}
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		result := entry.result
		c.mu.Unlock()
		return result, nil
	}
	c.mu.Unlock()

	result, err := project(kind, workspace, client, rules)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{result: result, timestamp: time.Now()}
	c.mu.Unlock()
	return result, nil
}

// ruleFingerprint flattens the rule list into a comparable key part.
func ruleFingerprint(rules []hypr.WorkspaceRule) string {
	var b strings.Builder
	for _, rule := range rules {
		if rule.ID != nil {
			b.WriteString("id:" + strconv.FormatInt(*rule.ID, 10))
		}
		if rule.Name != nil {
			b.WriteString("name:" + *rule.Name)
		}
		if rule.Monitor != nil {
			b.WriteString("monitor:" + *rule.Monitor)
		}
		b.WriteByte(';')
	}
	return b.String()
}
