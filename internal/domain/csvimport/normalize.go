package csvimport

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

var (
	errInvalidAmount = errors.New("invalid amount")
	errInvalidNumber = errors.New("invalid number")
	errInvalidDate   = errors.New("invalid date")
)

// amountNoise todo lo que no sea dígito, punto o signo menos se descarta de un monto.
var amountNoise = regexp.MustCompile(`[^0-9.\-]+`)

// leadingFloat y leadingInt toman el prefijo numérico de un texto ("3 lbs" -> 3).
var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseAmount normaliza un monto monetario. Formatos aceptados:
//
//	"3.99", "$3.99", "€3.99", "£3.99", "$1,234.56", "USD 10", "(5.00)" (negativo contable), "-2".
//
// Un texto vacío vale 0. Separador decimal siempre punto.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = amountNoise.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return decimal.Zero, errInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errInvalidAmount
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseQuantity interpreta una cantidad tomando el prefijo numérico ("2.5 kg" -> 2.5).
// Quita separadores de miles. Un texto vacío vale 0.
func ParseQuantity(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0, errInvalidNumber
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errInvalidNumber
	}
	return f, nil
}

// ParseInteger toma el prefijo entero ("10.5" -> 10). Un texto vacío vale 0.
func ParseInteger(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, errInvalidNumber
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

// TwoDigitYearPivot años de 2 dígitos que quedarían más de N años en el futuro se asumen del siglo anterior.
var TwoDigitYearPivot = 20

var (
	dateTimeLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"1/2/2006 3:04pm",
		"1/2/2006 3:04 PM",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006",
		"Jan 2, 2006", "January 2, 2006", "2 Jan 2006", "2 January 2006",
		"Mon, 02 Jan 2006",
	}
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06",
	}
)

// ParseDate interpreta fechas en formatos ISO, US (mes/día/año) y texto en inglés. Resultado en UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errInvalidDate
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	pivot := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivot {
				t = t.AddDate(-100, 0, 0)
			}
			return t, nil
		}
	}
	return time.Time{}, errInvalidDate
}

// NormalizeName clave de comparación de nombres: sin comillas dobles, sin espacios extremos,
// sin distinción de mayúsculas.
func NormalizeName(s string) string {
	return strings.TrimSpace(cases.Fold().String(strings.ReplaceAll(s, `"`, "")))
}

// IsChecked interpreta casillas exportadas de hojas de cálculo ("checked", sin distinción de mayúsculas).
func IsChecked(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "checked")
}
