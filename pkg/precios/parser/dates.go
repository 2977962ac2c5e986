package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/xuri/excelize/v2"
)

// DateEncoding tags the textual shape a date-row cell was recognized as.
type DateEncoding int

const (
	// EncodingUnrecognized means no known shape matched.
	EncodingUnrecognized DateEncoding = iota
	// EncodingRangeWithDash is "DD/MM - DD/MM" (or "DD/MM al DD/MM") anywhere in the cell.
	EncodingRangeWithDash
	// EncodingRangeWithYear is "DD/MM/YYYY".
	EncodingRangeWithYear
	// EncodingSerialNumber is a spreadsheet day serial.
	EncodingSerialNumber
	// EncodingSharedMonthRange is "DD-DD/MM".
	EncodingSharedMonthRange
	// EncodingDayMonth is "DD/MM".
	EncodingDayMonth
	// EncodingDayMonthName is "DD-MMM" with a month name.
	EncodingDayMonthName
	// EncodingMonthNameScan is free text holding a month name and a day.
	EncodingMonthNameScan
)

var encodingNames = map[DateEncoding]string{
	EncodingUnrecognized:     "unrecognized",
	EncodingRangeWithDash:    "range-with-dash",
	EncodingRangeWithYear:    "range-with-year",
	EncodingSerialNumber:     "serial-number",
	EncodingSharedMonthRange: "shared-month-range",
	EncodingDayMonth:         "day-month",
	EncodingDayMonthName:     "day-month-name",
	EncodingMonthNameScan:    "month-name-scan",
}

func (e DateEncoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "unknown"
}

var (
	rangeWithDashRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/\d{2,4})?\s*(?:-|\bal\b)\s*(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)
	fullDateRe         = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	serialRe           = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	sharedMonthRangeRe = regexp.MustCompile(`^(\d{1,2})\s*-\s*(\d{1,2})/(\d{1,2})$`)
	dayMonthRe         = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	dayMonthNameRe     = regexp.MustCompile(`^(\d{1,2})\s*-\s*(\p{L}+)\.?$`)
	digitsRe           = regexp.MustCompile(`\d+`)
)

// monthTokens is ordered: the first token found in a text wins.
var monthTokens = []struct {
	token string
	month time.Month
}{
	{"enero", time.January}, {"ene", time.January}, {"january", time.January}, {"jan", time.January},
	{"febrero", time.February}, {"february", time.February}, {"feb", time.February},
	{"marzo", time.March}, {"march", time.March}, {"mar", time.March},
	{"abril", time.April}, {"april", time.April}, {"abr", time.April}, {"apr", time.April},
	{"mayo", time.May}, {"may", time.May},
	{"junio", time.June}, {"june", time.June}, {"jun", time.June},
	{"julio", time.July}, {"july", time.July}, {"jul", time.July},
	{"agosto", time.August}, {"august", time.August}, {"ago", time.August}, {"aug", time.August},
	{"septiembre", time.September}, {"setiembre", time.September}, {"september", time.September},
	{"sept", time.September}, {"sep", time.September},
	{"octubre", time.October}, {"october", time.October}, {"oct", time.October},
	{"noviembre", time.November}, {"november", time.November}, {"nov", time.November},
	{"diciembre", time.December}, {"december", time.December}, {"dic", time.December}, {"dec", time.December},
}

// DateToken is a classified date-row cell, resolved later against a reference year.
type DateToken struct {
	Encoding DateEncoding
	Day      int
	Month    time.Month
	// Year is an explicit year embedded in the text, 0 when absent.
	Year int
	// Rollover is set for December-to-January ranges.
	Rollover bool
	// Clamp lets a day beyond the month's length snap to its last day.
	Clamp  bool
	Serial float64
}

// ClassifyCell classifies a date-row cell. Numeric cells are day serials.
func ClassifyCell(c models.Cell) DateToken {
	switch c.Kind {
	case models.CellNumber:
		if c.Num >= 1 {
			return DateToken{Encoding: EncodingSerialNumber, Serial: c.Num}
		}
		return DateToken{}
	case models.CellText:
		return ClassifyDate(c.Text)
	default:
		return DateToken{}
	}
}

// ClassifyDate tries each known encoding in priority order.
func ClassifyDate(text string) DateToken {
	s := strings.TrimSpace(text)
	if s == "" {
		return DateToken{}
	}

	if m := rangeWithDashRe.FindStringSubmatch(s); m != nil {
		startMonth, endDay, endMonth := atoi(m[2]), atoi(m[3]), atoi(m[4])
		if validMonth(startMonth) && validMonth(endMonth) && validDay(atoi(m[1])) && validDay(endDay) {
			return DateToken{
				Encoding: EncodingRangeWithDash,
				Day:      endDay,
				Month:    time.Month(endMonth),
				Year:     atoi(m[5]),
				Rollover: m[5] == "" && startMonth == 12 && endMonth == 1,
			}
		}
	}

	if m := fullDateRe.FindStringSubmatch(s); m != nil {
		day, month := atoi(m[1]), atoi(m[2])
		if validDay(day) && validMonth(month) {
			return DateToken{Encoding: EncodingRangeWithYear, Day: day, Month: time.Month(month), Year: atoi(m[3])}
		}
	}

	if serialRe.MatchString(s) {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 1 {
			return DateToken{Encoding: EncodingSerialNumber, Serial: v}
		}
	}

	if m := sharedMonthRangeRe.FindStringSubmatch(s); m != nil {
		day, month := atoi(m[2]), atoi(m[3])
		if validDay(day) && validMonth(month) {
			return DateToken{Encoding: EncodingSharedMonthRange, Day: day, Month: time.Month(month)}
		}
	}

	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		day, month := atoi(m[1]), atoi(m[2])
		if day >= 1 && validMonth(month) {
			return DateToken{Encoding: EncodingDayMonth, Day: day, Month: time.Month(month), Clamp: true}
		}
	}

	if m := dayMonthNameRe.FindStringSubmatch(s); m != nil {
		day := atoi(m[1])
		if month, ok := monthPrefix(Fold(m[2])); ok && validDay(day) {
			return DateToken{Encoding: EncodingDayMonthName, Day: day, Month: month}
		}
	}

	folded := Fold(s)
	if month, ok := monthAnywhere(folded); ok {
		if d := digitsRe.FindString(folded); d != "" && validDay(atoi(d)) {
			return DateToken{Encoding: EncodingMonthNameScan, Day: atoi(d), Month: month}
		}
	}

	return DateToken{}
}

// Resolve turns the token into a calendar date using refYear where the text
// carried no explicit year.
func (t DateToken) Resolve(refYear int) (time.Time, bool) {
	switch t.Encoding {
	case EncodingUnrecognized:
		return time.Time{}, false
	case EncodingSerialNumber:
		return SerialToDate(t.Serial)
	}

	year := refYear
	if t.Year != 0 {
		year = t.Year
	}
	if t.Rollover {
		year++
	}

	day := t.Day
	if t.Clamp {
		if last := daysIn(t.Month, year); day > last {
			day = last
		}
	}
	return civil(year, t.Month, day), true
}

// ResolveDate classifies and resolves a single date text.
func ResolveDate(text string, refYear int) (time.Time, bool) {
	return ClassifyDate(text).Resolve(refYear)
}

// WeekColumn is the canonical date assigned to one weekly column.
type WeekColumn struct {
	// Col is the 0-based grid column.
	Col      int
	Date     time.Time
	Encoding DateEncoding
	// Estimated is set when the date was extrapolated rather than read.
	Estimated bool
}

// ResolveWeekDates produces one canonical date per column of the date row,
// starting at FirstValueColumn. Unresolved columns are filled with the last
// resolved date plus seven days, or with an estimate counted from January 1
// of refYear when nothing was resolved yet.
func ResolveWeekDates(dateRow models.Row, refYear int) []WeekColumn {
	if len(dateRow) <= FirstValueColumn {
		return nil
	}

	cols := make([]WeekColumn, 0, len(dateRow)-FirstValueColumn)
	var last time.Time
	for col := FirstValueColumn; col < len(dateRow); col++ {
		tok := ClassifyCell(dateRow[col])
		wc := WeekColumn{Col: col, Encoding: tok.Encoding}

		if d, ok := tok.Resolve(refYear); ok {
			wc.Date = d
		} else {
			wc.Estimated = true
			if !last.IsZero() {
				wc.Date = last.AddDate(0, 0, 7)
			} else {
				wc.Date = civil(refYear, time.January, 1+7*(col-FirstValueColumn))
			}
		}

		last = wc.Date
		cols = append(cols, wc)
	}
	return cols
}

// SerialToDate converts a spreadsheet day serial (1900 date system) to a date.
func SerialToDate(serial float64) (time.Time, bool) {
	if serial < 1 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return civil(t.Year(), t.Month(), t.Day()), true
}

// DateToSerial is the inverse of SerialToDate for whole days.
func DateToSerial(t time.Time) float64 {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	d := civil(t.Year(), t.Month(), t.Day())
	return math.Round(d.Sub(epoch).Hours() / 24)
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(month time.Month, year int) int {
	return civil(year, month+1, 0).Day()
}

func monthPrefix(folded string) (time.Month, bool) {
	for _, m := range monthTokens {
		if strings.HasPrefix(folded, m.token) {
			return m.month, true
		}
	}
	return 0, false
}

func monthAnywhere(folded string) (time.Month, bool) {
	for _, m := range monthTokens {
		if strings.Contains(folded, m.token) {
			return m.month, true
		}
	}
	return 0, false
}

func validDay(d int) bool   { return d >= 1 && d <= 31 }
func validMonth(m int) bool { return m >= 1 && m <= 12 }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
