package period

import (
	"errors"
	"strings"
	"time"
)

// Granularity 排名周期粒度
type Granularity string

const (
	Yearly     Granularity = "YEARLY"
	Monthly    Granularity = "MONTHLY"
	Daily      Granularity = "DAILY"
	FourHourly Granularity = "FOUR_HOURLY"
)

const (
	slotHours = 4
	// 周期结束时间为下一周期起点前 1 毫秒
	endOffset = time.Millisecond
)

var ErrUnknownGranularity = errors.New("unknown period granularity")

// Bucket 一个周期的规范化键及起止时间
type Bucket struct {
	Granularity Granularity
	Year        int
	Month       int // YEARLY 时为 0
	Day         int // YEARLY / MONTHLY 时为 0
	HourSlot    int // 仅 FOUR_HOURLY 有意义，其余为 0
	StartedAt   time.Time
	EndedAt     time.Time
}

// Key 桶键，不含起止时间
type Key struct {
	Granularity Granularity
	Year        int
	Month       int
	Day         int
	HourSlot    int
}

func (b Bucket) Key() Key {
	return Key{
		Granularity: b.Granularity,
		Year:        b.Year,
		Month:       b.Month,
		Day:         b.Day,
		HourSlot:    b.HourSlot,
	}
}

// Parse 解析粒度字符串，大小写不敏感
func Parse(s string) (Granularity, error) {
	g := Granularity(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", ErrUnknownGranularity
	}
	return g, nil
}

func (g Granularity) Valid() bool {
	switch g {
	case Yearly, Monthly, Daily, FourHourly:
		return true
	}
	return false
}

// Resolve 计算 t 所在的周期桶，使用 t 自身的时区
func Resolve(g Granularity, t time.Time) (Bucket, error) {
	loc := t.Location()
	b := Bucket{Granularity: g, Year: t.Year()}
	var next time.Time

	switch g {
	case Yearly:
		b.StartedAt = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
		next = b.StartedAt.AddDate(1, 0, 0)
	case Monthly:
		b.Month = int(t.Month())
		b.StartedAt = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
		next = b.StartedAt.AddDate(0, 1, 0)
	case Daily:
		b.Month = int(t.Month())
		b.Day = t.Day()
		b.StartedAt = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		next = b.StartedAt.AddDate(0, 0, 1)
	case FourHourly:
		b.Month = int(t.Month())
		b.Day = t.Day()
		b.HourSlot = t.Hour() / slotHours * slotHours
		b.StartedAt = time.Date(t.Year(), t.Month(), t.Day(), b.HourSlot, 0, 0, 0, loc)
		next = time.Date(t.Year(), t.Month(), t.Day(), b.HourSlot+slotHours, 0, 0, 0, loc)
	default:
		return Bucket{}, ErrUnknownGranularity
	}

	b.EndedAt = next.Add(-endOffset)
	return b, nil
}

// Previous 返回紧邻的上一个周期桶：从本桶起点按墙上时间回退一个单位后重新归桶
func Previous(b Bucket) (Bucket, error) {
	var ref time.Time
	switch b.Granularity {
	case Yearly:
		ref = b.StartedAt.AddDate(-1, 0, 0)
	case Monthly:
		ref = b.StartedAt.AddDate(0, -1, 0)
	case Daily:
		ref = b.StartedAt.AddDate(0, 0, -1)
	case FourHourly:
		// 夏令时切换当天按绝对时长回退会跳过一个时段，负小时由 time.Date 归一到前一天
		ref = time.Date(b.Year, time.Month(b.Month), b.Day, b.HourSlot-slotHours, 0, 0, 0, b.StartedAt.Location())
	default:
		return Bucket{}, ErrUnknownGranularity
	}
	return Resolve(b.Granularity, ref)
}
