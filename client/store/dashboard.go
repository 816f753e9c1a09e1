package store

import (
	"context"
	"sync"
)

// Dashboard composes the three entity stores for pages that need all of them
// at once. Pure composition, no new semantics.
type Dashboard struct {
	Equipments   *EquipmentStore
	Maintenances *MaintenanceStore
	Tickets      *SupportTicketStore
}

func NewDashboard(equipments *EquipmentStore, maintenances *MaintenanceStore, tickets *SupportTicketStore) *Dashboard {
	return &Dashboard{
		Equipments:   equipments,
		Maintenances: maintenances,
		Tickets:      tickets,
	}
}

// FetchAll fans out to every store. The first error is returned, but all
// stores get a chance to refresh.
func (d *Dashboard) FetchAll(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() { defer wg.Done(); errs[0] = d.Equipments.FetchAll(ctx) }()
	go func() { defer wg.Done(); errs[1] = d.Maintenances.FetchAll(ctx) }()
	go func() { defer wg.Done(); errs[2] = d.Tickets.FetchAll(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Loading reports whether any underlying store is in flight.
func (d *Dashboard) Loading() bool {
	return d.Equipments.Loading() || d.Maintenances.Loading() || d.Tickets.Loading()
}

// LoadingResources names the sub-resources currently in flight, so callers
// can tell which collection is still loading instead of one merged flag.
func (d *Dashboard) LoadingResources() []string {
	var out []string
	if d.Equipments.Loading() {
		out = append(out, "equipments")
	}
	if d.Maintenances.Loading() {
		out = append(out, "maintenances")
	}
	if d.Tickets.Loading() {
		out = append(out, "tickets")
	}
	return out
}
