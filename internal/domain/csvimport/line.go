package csvimport

import "strings"

// ParseLine separa una línea CSV en campos. Las comillas dobles agrupan texto con comas
// y "" dentro de comillas produce una comilla literal. Una comilla sin cerrar deja el resto
// de la línea dentro del campo. No admite saltos de línea dentro de un campo.
func ParseLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, current.String())
}
