package service

import (
	"strconv"
)

// RegionTier names how much of the 10-digit administrative code a filter
// pins down.
type RegionTier int

const (
	TierNation RegionTier = iota
	TierSidoPrefix2
	TierDistrict5
	TierSigungu10
)

func (t RegionTier) String() string {
	switch t {
	case TierNation:
		return "NATION"
	case TierSidoPrefix2:
		return "SIDO_PREFIX2"
	case TierDistrict5:
		return "DISTRICT5"
	case TierSigungu10:
		return "SIGUNGU10"
	default:
		return "UNKNOWN"
	}
}

// RegionFilter is the classified form of a raw region parameter. Range tiers
// carry a half-open [RangeStart, RangeEnd) pair of fixed-width code strings;
// TierSigungu10 carries Exact instead. Codes are compared as strings, which
// matches numeric order because every stored code is exactly ten digits.
type RegionFilter struct {
	Tier       RegionTier
	RangeStart string
	RangeEnd   string
	Exact      string
}

// ClassifyRegion maps a raw region parameter onto a filter tier by its
// length: empty means nationwide, 2 digits a province prefix, 5 digits a
// district prefix, 10 digits an exact sigungu code. Anything else is a
// client error.
func ClassifyRegion(raw string) (RegionFilter, error) {
	if raw == "" {
		return RegionFilter{Tier: TierNation}, nil
	}
	if !allDigits(raw) {
		return RegionFilter{}, ErrRegionCodeInvalid
	}
	switch len(raw) {
	case 2:
		return RegionFilter{
			Tier:       TierSidoPrefix2,
			RangeStart: raw + "00000000",
			RangeEnd:   rangeEnd(raw, "00000000"),
		}, nil
	case 5:
		return RegionFilter{
			Tier:       TierDistrict5,
			RangeStart: raw + "00000",
			RangeEnd:   rangeEnd(raw, "00000"),
		}, nil
	case 10:
		return RegionFilter{Tier: TierSigungu10, Exact: raw}, nil
	default:
		return RegionFilter{}, ErrRegionCodeInvalid
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// rangeEnd builds the exclusive upper bound for a prefix scan: the prefix
// incremented by one, padded back to full code width. An all-nines prefix
// would carry past the fixed width and break string ordering, so it gets a
// sentinel above every ten-digit code instead.
func rangeEnd(prefix, suffix string) string {
	v, _ := strconv.Atoi(prefix)
	next := strconv.Itoa(v + 1)
	if len(next) > len(prefix) {
		return "~"
	}
	for len(next) < len(prefix) {
		next = "0" + next
	}
	return next + suffix
}
