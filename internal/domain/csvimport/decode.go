package csvimport

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeUpload convierte los bytes subidos a texto. Quita el BOM UTF-8 y, si el contenido
// no es UTF-8 válido (exportaciones de Excel en Windows), lo decodifica como Windows-1252.
func DecodeUpload(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
