package models

import "strings"

// Region is a Seoul district (구) with its five-digit LAWD_CD.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Zone string `json:"zone"`
}

// Zone groups districts the way the Seoul Metropolitan Government's
// five living zones (생활권) do.
type Zone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RegionCodes []string `json:"region_codes"`
}

const (
	ZoneDosim   = "dosim"
	ZoneDongbuk = "dongbuk"
	ZoneSeobuk  = "seobuk"
	ZoneSeonam  = "seonam"
	ZoneDongnam = "dongnam"
)

// DefaultRegionCode is 강남구.
const DefaultRegionCode = "11680"

var regions = []Region{
	{Code: "11110", Name: "종로구", Zone: ZoneDosim},
	{Code: "11140", Name: "중구", Zone: ZoneDosim},
	{Code: "11170", Name: "용산구", Zone: ZoneDosim},
	{Code: "11200", Name: "성동구", Zone: ZoneDongbuk},
	{Code: "11215", Name: "광진구", Zone: ZoneDongbuk},
	{Code: "11230", Name: "동대문구", Zone: ZoneDongbuk},
	{Code: "11260", Name: "중랑구", Zone: ZoneDongbuk},
	{Code: "11290", Name: "성북구", Zone: ZoneDongbuk},
	{Code: "11305", Name: "강북구", Zone: ZoneDongbuk},
	{Code: "11320", Name: "도봉구", Zone: ZoneDongbuk},
	{Code: "11350", Name: "노원구", Zone: ZoneDongbuk},
	{Code: "11380", Name: "은평구", Zone: ZoneSeobuk},
	{Code: "11410", Name: "서대문구", Zone: ZoneSeobuk},
	{Code: "11440", Name: "마포구", Zone: ZoneSeobuk},
	{Code: "11470", Name: "양천구", Zone: ZoneSeonam},
	{Code: "11500", Name: "강서구", Zone: ZoneSeonam},
	{Code: "11530", Name: "구로구", Zone: ZoneSeonam},
	{Code: "11545", Name: "금천구", Zone: ZoneSeonam},
	{Code: "11560", Name: "영등포구", Zone: ZoneSeonam},
	{Code: "11590", Name: "동작구", Zone: ZoneSeonam},
	{Code: "11620", Name: "관악구", Zone: ZoneSeonam},
	{Code: "11650", Name: "서초구", Zone: ZoneDongnam},
	{Code: "11680", Name: "강남구", Zone: ZoneDongnam},
	{Code: "11710", Name: "송파구", Zone: ZoneDongnam},
	{Code: "11740", Name: "강동구", Zone: ZoneDongnam},
}

var zones = []Zone{
	{ID: ZoneDosim, Name: "도심권"},
	{ID: ZoneDongbuk, Name: "동북권"},
	{ID: ZoneSeobuk, Name: "서북권"},
	{ID: ZoneSeonam, Name: "서남권"},
	{ID: ZoneDongnam, Name: "동남권"},
}

var (
	regionsByKey = map[string]Region{}
	zonesByKey   = map[string]int{}
)

func init() {
	for _, r := range regions {
		regionsByKey[r.Code] = r
		regionsByKey[r.Name] = r
	}
	for i := range zones {
		zonesByKey[zones[i].ID] = i
		zonesByKey[zones[i].Name] = i
		for _, r := range regions {
			if r.Zone == zones[i].ID {
				zones[i].RegionCodes = append(zones[i].RegionCodes, r.Code)
			}
		}
	}
}

// Regions returns a copy of the 25 districts ordered by code.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// LookupRegion resolves a district code ("11680") or name ("강남구").
func LookupRegion(key string) (Region, bool) {
	r, ok := regionsByKey[strings.TrimSpace(key)]
	return r, ok
}

// Zones returns a copy of the five zones.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	for i, z := range zones {
		out[i] = z
		out[i].RegionCodes = append([]string(nil), z.RegionCodes...)
	}
	return out
}

// LookupZone resolves a zone id ("dongnam") or name ("동남권").
func LookupZone(key string) (Zone, bool) {
	i, ok := zonesByKey[strings.TrimSpace(key)]
	if !ok {
		return Zone{}, false
	}
	z := zones[i]
	z.RegionCodes = append([]string(nil), z.RegionCodes...)
	return z, true
}
