package csvimport

import "strings"

// Kind tipo de registro detectado a partir de los encabezados.
type Kind string

const (
	KindSales     Kind = "sales"
	KindInventory Kind = "inventory"
	KindProducts  Kind = "products"
	KindCustomers Kind = "customers"
	KindSources   Kind = "sources"
	KindUnknown   Kind = "unknown"
)

// sniffRules se evalúan en orden; gana la primera que coincide.
// Clientes va antes que proveedores: un CSV de clientes puede traer una columna "contact".
var sniffRules = []struct {
	kind  Kind
	terms []string
}{
	{KindSales, []string{"total order price"}},
	{KindInventory, []string{"date received"}},
	{KindProducts, []string{"show in store"}},
	{KindCustomers, []string{"customer", "email", "contact"}},
	{KindSources, []string{"source", "supplier", "vendor"}},
}

// DetectKind clasifica el archivo según subcadenas en los encabezados (ya en minúsculas).
func DetectKind(headers []string) Kind {
	for _, rule := range sniffRules {
		for _, h := range headers {
			h = strings.ToLower(h)
			for _, term := range rule.terms {
				if strings.Contains(h, term) {
					return rule.kind
				}
			}
		}
	}
	return KindUnknown
}
