package util

import (
	"strconv"
)

// StrSliceToUInt64Slice converts redis set members back to ids; malformed
// members fail the whole batch.
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func PtrInt(i int) *int {
	return &i
}

func PtrFloat64(f float64) *float64 {
	return &f
}
