package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsEnumeration(t *testing.T) {
	all := Regions()
	require.Len(t, all, 25)

	seen := map[string]bool{}
	for _, r := range all {
		assert.Len(t, r.Code, 5)
		assert.False(t, seen[r.Code], "duplicate code %s", r.Code)
		seen[r.Code] = true
	}
}

func TestLookupRegion(t *testing.T) {
	byCode, ok := LookupRegion("11680")
	require.True(t, ok)
	assert.Equal(t, "강남구", byCode.Name)

	byName, ok := LookupRegion(" 마포구 ")
	require.True(t, ok)
	assert.Equal(t, "11440", byName.Code)

	_, ok = LookupRegion("99999")
	assert.False(t, ok)
}

func TestZonesCoverEveryDistrictOnce(t *testing.T) {
	total := 0
	for _, z := range Zones() {
		total += len(z.RegionCodes)
	}
	assert.Equal(t, 25, total)

	dongnam, ok := LookupZone("동남권")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"11650", "11680", "11710", "11740"}, dongnam.RegionCodes)

	dosim, ok := LookupZone(ZoneDosim)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"11110", "11140", "11170"}, dosim.RegionCodes)
}

func TestZonesReturnsCopies(t *testing.T) {
	z := Zones()
	z[0].RegionCodes[0] = "00000"
	again, _ := LookupZone(z[0].ID)
	assert.NotEqual(t, "00000", again.RegionCodes[0])
}
