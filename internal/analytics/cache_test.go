package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheHitBeforeExpiry(t *testing.T) {
	clock := testNow
	c := newCache(func() time.Time { return clock })

	c.set(keyDashboard, DashboardStats{TotalOrders: 7}, shortTTL)

	clock = clock.Add(4 * time.Minute)
	got, ok := c.get(keyDashboard)
	assert.True(t, ok)
	assert.Equal(t, 7, got.(DashboardStats).TotalOrders)
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	clock := testNow
	c := newCache(func() time.Time { return clock })

	c.set(keyDashboard, DashboardStats{}, shortTTL)

	clock = clock.Add(shortTTL + time.Second)
	_, ok := c.get(keyDashboard)
	assert.False(t, ok)
}

func TestCacheCustomerTTLIsLonger(t *testing.T) {
	clock := testNow
	c := newCache(func() time.Time { return clock })

	c.set(keyCustomers, CustomerAnalytics{}, customerTTL)

	clock = clock.Add(7 * time.Minute)
	_, ok := c.get(keyCustomers)
	assert.True(t, ok)

	clock = clock.Add(4 * time.Minute)
	_, ok = c.get(keyCustomers)
	assert.False(t, ok)
}

func TestCacheClearDropsEverything(t *testing.T) {
	c := newCache(time.Now)
	c.set(keyDashboard, DashboardStats{}, shortTTL)
	c.set(keySales, SalesAnalytics{}, shortTTL)

	c.clear()

	_, ok := c.get(keyDashboard)
	assert.False(t, ok)
	_, ok = c.get(keySales)
	assert.False(t, ok)
}
