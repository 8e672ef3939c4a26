package importer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// Margen fijo aplicado a ventas históricas: el total del archivo es costo y el precio es costo * 1.05.
var (
	historicalMarkup       = decimal.RequireFromString("0.05")
	historicalMarkupFactor = decimal.NewFromInt(1).Add(historicalMarkup)
)

// importSales agrupa las filas por pedido; cada pedido suma todas sus filas al resultado.
func (r *importRun) importSales(ctx context.Context, rows []csvimport.Row) error {
	groups := csvimport.GroupOrders(rows)
	for i, g := range groups {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("import aborted after %d of %d orders: %w", i, len(groups), err)
		}
		if err := r.guard(g.StartLine(), func() error { return r.importOrder(ctx, g) }); err != nil {
			r.fail(g.StartLine(), len(g.Rows), err)
			continue
		}
		r.result.AddSuccess(len(g.Rows))
	}
	return nil
}

func (r *importRun) salesProducts(ctx context.Context) (*productIndex, error) {
	if r.uc.opts.SalesStoreScoped {
		return r.productsInStore(ctx)
	}
	return r.productsEverywhere(ctx)
}

// importOrder crea la venta con los artículos resolubles. El total suma todas las líneas con
// monto legible, aunque su producto no exista. Sin artículos resolubles el pedido falla.
func (r *importRun) importOrder(ctx context.Context, g csvimport.OrderGroup) error {
	header := csvimport.ParseSaleOrderHeader(g.Rows[0], r.uc.now())
	idx, err := r.salesProducts(ctx)
	if err != nil {
		return err
	}

	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(g.Rows))
	var lineErrs []string
	for _, row := range g.Rows {
		line, err := csvimport.ParseSaleLine(row)
		total = total.Add(line.LineTotal)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Sprintf("row %d: %s", row.Line, err))
			continue
		}
		p := idx.find(line.ProductName)
		if p == nil {
			lineErrs = append(lineErrs, fmt.Sprintf("row %d: Product \"%s\" not found", row.Line, line.ProductName))
			continue
		}
		cost := line.LineTotal.Div(decimal.NewFromFloat(line.Quantity))
		items = append(items, entity.SaleItem{
			ProductID: p.ID,
			Quantity:  int(math.Floor(line.Quantity)),
			CostPrice: cost,
			SalePrice: cost.Mul(historicalMarkupFactor),
		})
	}

	if len(items) == 0 {
		return failf("Order %s has no importable items: %s", g.Key, strings.Join(lineErrs, "; "))
	}
	for _, msg := range lineErrs {
		r.log.Warn().Str("order", g.Key).Str("reason", msg).Msg("artículo omitido")
	}

	sale := &entity.Sale{
		SaleDate:      header.SaleDate,
		TotalCost:     total,
		TotalPrice:    total.Mul(historicalMarkupFactor),
		MarkupPercent: historicalMarkup,
		Items:         items,
	}
	return r.uc.tx.Run(ctx, func(_ repository.ProductRepository, customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) error {
		customer, err := resolveCustomer(ctx, customerRepo, header.CustomerEmail)
		if err != nil {
			return err
		}
		sale.CustomerID = customer.ID
		return saleRepo.Create(ctx, sale)
	})
}

// resolveCustomer busca por email en minúsculas; si no existe, asigna la venta al cliente comodín
// identificado por el email original (o el centinela si la fila no trae email).
func resolveCustomer(ctx context.Context, customers repository.CustomerRepository, email string) (*entity.Customer, error) {
	if email != "" {
		c, err := customers.GetByEmail(ctx, strings.ToLower(email))
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	} else {
		email = entity.UnaccountedCustomerEmail
	}
	return customers.UpsertByEmail(ctx, email, entity.UnaccountedCustomerName)
}
