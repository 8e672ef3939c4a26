package csvimport

// OrderGroup filas de un mismo pedido (una por artículo), en el orden del archivo.
type OrderGroup struct {
	Key  string
	Rows []Row
}

// StartLine fila física del primer artículo del pedido; se usa para reportar errores del grupo.
func (g OrderGroup) StartLine() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return g.Rows[0].Line
}

// GroupOrders agrupa filas de ventas por la columna de pedido. Sin identificador, la fila cae
// en el grupo "unknown". Se conserva el orden de primera aparición de cada grupo.
func GroupOrders(rows []Row) []OrderGroup {
	index := make(map[string]int)
	var groups []OrderGroup
	for _, row := range rows {
		key := row.Get(SaleOrderCol)
		if key == "" {
			key = unknownOrderGroup
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, OrderGroup{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}
