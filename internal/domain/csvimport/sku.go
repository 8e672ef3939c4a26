package csvimport

import (
	"math/rand"
	"strings"
)

const (
	skuPrefixLen = 8
	skuSuffixLen = 4
	base36       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateSKU arma un SKU "<PREFIJO>-<XXXX>": los primeros 8 caracteres del nombre con
// todo lo no alfanumérico reemplazado por guiones, en mayúsculas, más 4 caracteres base36 aleatorios.
// randIntN permite inyectar una fuente determinista en tests; nil usa math/rand.
func GenerateSKU(name string, randIntN func(n int) int) string {
	if randIntN == nil {
		randIntN = rand.Intn
	}
	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == skuPrefixLen {
			break
		}
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
		n++
	}
	prefix := strings.ToUpper(b.String())

	suffix := make([]byte, skuSuffixLen)
	for i := range suffix {
		suffix[i] = base36[randIntN(len(base36))]
	}
	return prefix + "-" + string(suffix)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
