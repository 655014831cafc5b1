package resource

import (
	"context"
	"log/slog"

	"github.com/khetconnect/admin-panel/internal/forms"
	"github.com/khetconnect/admin-panel/internal/khetapi"
	"github.com/khetconnect/admin-panel/internal/models"
)

func NewFarmers(client *khetapi.Client, log *slog.Logger) *Controller[models.Farmer] {
	return &Controller[models.Farmer]{
		name:   "farmers",
		schema: forms.Farmer(),
		list:   client.ListFarmers,
		create: client.AddFarmer,
		remove: client.DeleteFarmer,
		log:    log,
	}
}

func NewProducts(client *khetapi.Client, log *slog.Logger) *Controller[models.Product] {
	return &Controller[models.Product]{
		name:   "products",
		schema: forms.Product(),
		list:   client.ListProducts,
		create: client.AddProduct,
		remove: client.DeleteProduct,
		log:    log,
	}
}

// Orders has no create form; instead it can mark a checkout completed.
type Orders struct {
	Controller[models.Order]
	setStatus func(ctx context.Context, token, id, status string) error
}

func NewOrders(client *khetapi.Client, log *slog.Logger) *Orders {
	return &Orders{
		Controller: Controller[models.Order]{
			name: "orders",
			list: client.ListOrders,
			log:  log,
		},
		setStatus: client.SetOrderStatus,
	}
}

// Complete marks one checkout completed and refreshes the list.
func (o *Orders) Complete(ctx context.Context, token, id string) error {
	if err := o.begin(); err != nil {
		return err
	}
	defer o.end()

	if err := o.setStatus(ctx, token, id, "Completed"); err != nil {
		return err
	}
	return o.Refresh(ctx)
}

// Stats are the dashboard aggregates. They are computed over the collection
// in server order, before any display-only reversal.
type Stats struct {
	Total     int
	Revenue   float64
	Completed int
}

func (o *Orders) Stats() Stats {
	var s Stats
	for _, ord := range o.Records() {
		s.Total++
		s.Revenue += ord.TotalAmount
		if ord.PaymentStatus == "Completed" {
			s.Completed++
		}
	}
	return s
}

// Display returns the orders newest-first for the table. Reversal happens on
// a copy; the stored collection keeps server order.
func (o *Orders) Display() []models.Order {
	records := o.Records()
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records
}
