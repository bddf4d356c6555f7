package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

type IdentityStrategy string

const (
	StrategyTimestamp IdentityStrategy = "timestamp"
	StrategyNumericID IdentityStrategy = "numeric_id"
)

const (
	LastSeenTimestampKey = "last_seen_pub_timestamp"
	LastSeenArticleIDKey = "last_seen_article_id"
)

// CheckpointKey は戦略ごとの保存キーを返します
func (s IdentityStrategy) CheckpointKey() (string, error) {
	switch s {
	case StrategyTimestamp:
		return LastSeenTimestampKey, nil
	case StrategyNumericID:
		return LastSeenArticleIDKey, nil
	default:
		return "", fmt.Errorf("unknown identity strategy: %q", string(s))
	}
}

type StoredValueKind int

const (
	StoredAbsent StoredValueKind = iota
	StoredFound
	StoredInvalidType
)

func (k StoredValueKind) String() string {
	switch k {
	case StoredAbsent:
		return "absent"
	case StoredFound:
		return "found"
	case StoredInvalidType:
		return "invalid_type"
	default:
		return fmt.Sprintf("StoredValueKind(%d)", int(k))
	}
}

// StoredValue is what a checkpoint store hands back for a key: a number,
// nothing, or something that is not a number.
type StoredValue struct {
	Kind        StoredValueKind
	Number      int64
	Description string
}

func Found(n int64) StoredValue {
	return StoredValue{Kind: StoredFound, Number: n}
}

func Absent() StoredValue {
	return StoredValue{Kind: StoredAbsent}
}

func InvalidType(description string) StoredValue {
	return StoredValue{Kind: StoredInvalidType, Description: description}
}

// StoredValueFrom coerces a raw value decoded by a store driver. Integers and
// floats are accepted (floats truncate toward zero), nil is absent, and every
// other representation, numeric-looking strings included, is invalid.
func StoredValueFrom(v any) StoredValue {
	switch n := v.(type) {
	case nil:
		return Absent()
	case int64:
		return Found(n)
	case int:
		return Found(int64(n))
	case int32:
		return Found(int64(n))
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return Found(i)
		}
		f, err := n.Float64()
		if err != nil {
			return InvalidType(fmt.Sprintf("unparseable number %q", n.String()))
		}
		return fromFloat(f)
	default:
		return InvalidType(fmt.Sprintf("%T", v))
	}
}

func fromFloat(f float64) StoredValue {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return InvalidType(fmt.Sprintf("non-representable number %v", f))
	}
	return Found(int64(f))
}
