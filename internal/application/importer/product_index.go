package importer

import (
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// productIndex búsqueda de productos por nombre normalizado. Ante nombres repetidos gana el primero cargado.
type productIndex struct {
	byName map[string]*entity.Product
}

func newProductIndex(products []*entity.Product) *productIndex {
	idx := &productIndex{byName: make(map[string]*entity.Product, len(products))}
	for _, p := range products {
		idx.add(p)
	}
	return idx
}

func (i *productIndex) find(name string) *entity.Product {
	return i.byName[csvimport.NormalizeName(name)]
}

func (i *productIndex) add(p *entity.Product) {
	key := csvimport.NormalizeName(p.Name)
	if _, ok := i.byName[key]; !ok {
		i.byName[key] = p
	}
}
