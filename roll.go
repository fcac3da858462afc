package loanmath

import (
	"fmt"
	"time"
)

// Weekend 默认节假日实现：周六、周日
func Weekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextDueDate 给定"起息日锚点"与期数，返回第 period 期的还款日。
// 月/季/年频率以锚点的日号为基准并钳制到当月最后一天，
// 避免 1 月 31 日 +1 月漂移到 3 月 3 日。
func NextDueDate(anchor time.Time, period int, f Frequency, customDays int) (time.Time, error) {
	if period < 0 {
		return anchor, fmt.Errorf("%w: period must not be negative", ErrInvalidInput)
	}
	switch f {
	case FreqDaily:
		return anchor.AddDate(0, 0, period), nil
	case FreqWeekly:
		return anchor.AddDate(0, 0, 7*period), nil
	case FreqBiweekly:
		return anchor.AddDate(0, 0, 14*period), nil
	case FreqMonthly:
		return addMonthsClamped(anchor, period), nil
	case FreqQuarterly:
		return addMonthsClamped(anchor, 3*period), nil
	case FreqYearly:
		return addMonthsClamped(anchor, 12*period), nil
	case FreqCustom:
		if customDays <= 0 {
			return anchor, fmt.Errorf("%w: custom frequency requires a positive day interval", ErrInvalidInput)
		}
		return anchor.AddDate(0, 0, customDays*period), nil
	default:
		// one_time 没有期别增量
		return anchor, fmt.Errorf("%w: %q has no period increment", ErrUnsupportedFrequency, f)
	}
}

// addMonthsClamped 加 n 个月并把日号钳到目标月的最后一天
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// Roll 按跳期规则把落在节假日的日期挪到工作日。
// isHoliday 为 nil 时使用 Weekend。
func Roll(t time.Time, roll RollConvention, isHoliday HolidayFunc) time.Time {
	if isHoliday == nil {
		isHoliday = Weekend
	}
	switch roll {
	case "", Unadjusted:
		return t
	case Following:
		for isHoliday(t) {
			t = t.AddDate(0, 0, 1)
		}
		return t
	case Preceding:
		for isHoliday(t) {
			t = t.AddDate(0, 0, -1)
		}
		return t
	case ModFollow:
		origMonth := t.Month()
		t2 := t
		for isHoliday(t2) {
			t2 = t2.AddDate(0, 0, 1)
		}
		if t2.Month() != origMonth {
			t2 = t
			for isHoliday(t2) {
				t2 = t2.AddDate(0, 0, -1)
			}
		}
		return t2
	}
	return t
}

// CompareDate 只比较日期部分
func CompareDate(t1, t2 time.Time) int {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()

	switch {
	case y1 < y2 || (y1 == y2 && m1 < m2) || (y1 == y2 && m1 == m2 && d1 < d2):
		return -1
	case y1 == y2 && m1 == m2 && d1 == d2:
		return 0
	default:
		return 1
	}
}
