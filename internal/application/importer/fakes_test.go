package importer_test

import (
	"context"
	"strings"

	"github.com/jhoicas/multistore-api/internal/application/importer"
	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// memDB persistencia en memoria para los tests del motor de importación.
type memDB struct {
	nextID         int64
	stores         map[int64]*entity.Store
	products       []*entity.Product
	sources        []*entity.Source
	categories     []*entity.Category
	customers      []*entity.Customer
	customerStores []entity.CustomerStore
	received       []*entity.InventoryReceived
	sales          []*entity.Sale

	panicOnProduct string // Create entra en panic para este nombre
	listAllCalls   int
	listStoreCalls int
}

func newMemDB(storeIDs ...int64) *memDB {
	db := &memDB{stores: make(map[int64]*entity.Store), nextID: 100}
	for _, id := range storeIDs {
		db.stores[id] = &entity.Store{ID: id, Name: "Store"}
	}
	return db
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func (db *memDB) seedProduct(storeID int64, name string) *entity.Product {
	p := &entity.Product{ID: db.id(), StoreID: storeID, Name: name, SKU: strings.ToUpper(name)}
	db.products = append(db.products, p)
	return p
}

func (db *memDB) repositories() importer.Repositories {
	return importer.Repositories{
		Stores:     storeRepo{db},
		Customers:  customerRepo{db},
		Products:   productRepo{db},
		Sources:    sourceRepo{db},
		Categories: categoryRepo{db},
		Inventory:  inventoryRepo{db},
	}
}

type memTx struct{ db *memDB }

func (t memTx) Run(ctx context.Context, fn func(repository.ProductRepository, repository.CustomerRepository, repository.SaleRepository) error) error {
	return fn(productRepo{t.db}, customerRepo{t.db}, saleRepo{t.db})
}

type storeRepo struct{ db *memDB }

func (r storeRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	return r.db.stores[id], nil
}

func (r storeRepo) Create(_ context.Context, s *entity.Store) error {
	s.ID = r.db.id()
	r.db.stores[s.ID] = s
	return nil
}

func (r storeRepo) Count(context.Context) (int, error) { return len(r.db.stores), nil }

type customerRepo struct{ db *memDB }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	for _, existing := range r.db.customers {
		if existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.db.id()
	r.db.customers = append(r.db.customers, c)
	return nil
}

func (r customerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.db.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r customerRepo) UpsertByEmail(ctx context.Context, email, name string) (*entity.Customer, error) {
	if c, _ := r.GetByEmail(ctx, email); c != nil {
		return c, nil
	}
	c := &entity.Customer{Name: name, Email: email}
	return c, r.Create(ctx, c)
}

func (r customerRepo) AddToStore(_ context.Context, customerID, storeID int64) error {
	r.db.customerStores = append(r.db.customerStores, entity.CustomerStore{CustomerID: customerID, StoreID: storeID})
	return nil
}

type productRepo struct{ db *memDB }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	if p.Name == r.db.panicOnProduct {
		panic("fallo simulado")
	}
	for _, existing := range r.db.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.db.id()
	r.db.products = append(r.db.products, p)
	return nil
}

func (r productRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.Product, error) {
	r.db.listStoreCalls++
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r productRepo) ListAll(context.Context) ([]*entity.Product, error) {
	r.db.listAllCalls++
	return append([]*entity.Product(nil), r.db.products...), nil
}

type sourceRepo struct{ db *memDB }

func (r sourceRepo) Create(_ context.Context, s *entity.Source) error {
	for _, existing := range r.db.sources {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	s.ID = r.db.id()
	r.db.sources = append(r.db.sources, s)
	return nil
}

func (r sourceRepo) GetByName(_ context.Context, name string) (*entity.Source, error) {
	for _, s := range r.db.sources {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

type categoryRepo struct{ db *memDB }

func (r categoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = r.db.id()
	r.db.categories = append(r.db.categories, c)
	return nil
}

func (r categoryRepo) ListByNames(_ context.Context, names []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.db.categories {
		for _, n := range names {
			if c.Name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

type inventoryRepo struct{ db *memDB }

func (r inventoryRepo) Create(_ context.Context, rec *entity.InventoryReceived) error {
	rec.ID = r.db.id()
	r.db.received = append(r.db.received, rec)
	return nil
}

type saleRepo struct{ db *memDB }

func (r saleRepo) Create(_ context.Context, s *entity.Sale) error {
	s.ID = r.db.id()
	r.db.sales = append(r.db.sales, s)
	return nil
}

type stubSheets struct {
	records [][]string
	err     error
}

func (s stubSheets) ReadFirstSheet([]byte) ([][]string, error) { return s.records, s.err }
