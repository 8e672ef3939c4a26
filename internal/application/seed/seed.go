// Package seed carga los datos de referencia que la importación espera encontrar.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// DefaultSources proveedores habituales de las tiendas.
var DefaultSources = []string{"Frankferd Farms", "Frontier Co-op", "Costco"}

// DefaultStoreName nombre de la tienda creada cuando no hay ninguna.
const DefaultStoreName = "Main Store"

// Report qué creó la siembra. Ejecutarla de nuevo no duplica nada.
type Report struct {
	SourcesCreated int
	CustomerTypes  int
	StoreCreated   bool
}

// Seeder siembra proveedores, tipos de cliente y la tienda por defecto.
type Seeder struct {
	stores        repository.StoreRepository
	sources       repository.SourceRepository
	customerTypes repository.CustomerTypeRepository
	log           *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(stores repository.StoreRepository, sources repository.SourceRepository, customerTypes repository.CustomerTypeRepository, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{stores: stores, sources: sources, customerTypes: customerTypes, log: log}
}

// Run es idempotente.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var rep Report

	for _, name := range DefaultSources {
		err := s.sources.Create(ctx, &entity.Source{Name: name})
		switch {
		case err == nil:
			rep.SourcesCreated++
			s.log.Info().Str("source", name).Msg("proveedor creado")
		case errors.Is(err, domain.ErrDuplicate):
		default:
			return rep, fmt.Errorf("seed source %q: %w", name, err)
		}
	}

	for _, name := range []string{entity.CustomerTypeMember, entity.CustomerTypeCustomer} {
		if _, err := s.customerTypes.EnsureByName(ctx, name); err != nil {
			return rep, fmt.Errorf("seed customer type %q: %w", name, err)
		}
		rep.CustomerTypes++
	}

	n, err := s.stores.Count(ctx)
	if err != nil {
		return rep, fmt.Errorf("count stores: %w", err)
	}
	if n == 0 {
		store := &entity.Store{Name: DefaultStoreName}
		if err := s.stores.Create(ctx, store); err != nil {
			return rep, fmt.Errorf("seed store: %w", err)
		}
		rep.StoreCreated = true
		s.log.Info().Int64("store_id", store.ID).Msg("tienda por defecto creada")
	}
	return rep, nil
}
