package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omufusion/internal/models"
)

func countDefaults(addresses []models.Address) int {
	n := 0
	for _, addr := range addresses {
		if addr.IsDefault {
			n++
		}
	}
	return n
}

func TestAddAddressFirstBecomesDefault(t *testing.T) {
	got := addAddress(nil, models.Address{ID: "a1", Title: "Home", Detail: "Street 1"})
	require.Len(t, got, 1)
	assert.True(t, got[0].IsDefault)
}

func TestAddAddressNewDefaultDemotesOthers(t *testing.T) {
	existing := []models.Address{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
	}
	got := addAddress(existing, models.Address{ID: "a3", IsDefault: true})
	require.Len(t, got, 3)
	assert.Equal(t, 1, countDefaults(got))
	assert.True(t, got[2].IsDefault)
}

func TestAddAddressNonDefaultKeepsExistingDefault(t *testing.T) {
	existing := []models.Address{{ID: "a1", IsDefault: true}}
	got := addAddress(existing, models.Address{ID: "a2"})
	require.Len(t, got, 2)
	assert.True(t, got[0].IsDefault)
	assert.False(t, got[1].IsDefault)
}

func TestRemoveAddressPromotesNewDefault(t *testing.T) {
	existing := []models.Address{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
		{ID: "a3"},
	}
	got, found := removeAddress(existing, "a1")
	require.True(t, found)
	require.Len(t, got, 2)
	assert.Equal(t, 1, countDefaults(got))
	assert.True(t, got[0].IsDefault)
}

func TestRemoveAddressUnknownID(t *testing.T) {
	existing := []models.Address{{ID: "a1", IsDefault: true}}
	_, found := removeAddress(existing, "nope")
	assert.False(t, found)
}

func TestSetDefaultAddressMovesTheFlag(t *testing.T) {
	existing := []models.Address{
		{ID: "a1", IsDefault: true},
		{ID: "a2"},
	}
	got, found := setDefaultAddress(existing, "a2")
	require.True(t, found)
	assert.Equal(t, 1, countDefaults(got))
	assert.True(t, got[1].IsDefault)
	assert.False(t, got[0].IsDefault)
}

// Any sequence of add/remove/set-default leaves exactly one default while at
// least one address exists.
func TestDefaultInvariantAcrossSequence(t *testing.T) {
	var addrs []models.Address

	addrs = addAddress(addrs, models.Address{ID: "a1"})
	addrs = addAddress(addrs, models.Address{ID: "a2", IsDefault: true})
	addrs = addAddress(addrs, models.Address{ID: "a3"})
	assert.Equal(t, 1, countDefaults(addrs))

	addrs, _ = setDefaultAddress(addrs, "a3")
	assert.Equal(t, 1, countDefaults(addrs))

	addrs, _ = removeAddress(addrs, "a3")
	assert.Equal(t, 1, countDefaults(addrs))

	addrs, _ = removeAddress(addrs, "a1")
	assert.Equal(t, 1, countDefaults(addrs))
}

func TestNormalizeDefaultAddressRepairsDoubleDefault(t *testing.T) {
	// Legacy documents written before the service enforced the invariant.
	broken := []models.Address{
		{ID: "a1", IsDefault: true},
		{ID: "a2", IsDefault: true},
	}
	got := normalizeDefaultAddress(broken, false, "")
	assert.Equal(t, 1, countDefaults(got))
}
