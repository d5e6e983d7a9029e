package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rentora/rentora/internal/client/models"
)

// Vehicles lists the fleet, optionally narrowed by category. Browsing works
// for anonymous users too.
func (a *App) Vehicles(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (SUV, SEDAN, ... or empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var filters *models.VehicleFilters
	if category != "" {
		filters = &models.VehicleFilters{Category: category}
	}

	vehicles, err := a.api.Vehicles(ctx, filters)
	if err != nil {
		printlnFn("Failed to load vehicles:", err.Error())
		return err
	}

	if len(vehicles) == 0 {
		printlnFn("No vehicles found.")
		return nil
	}

	for _, v := range vehicles {
		printlnFn(fmt.Sprintf("#%d %d %s %s: %s, %d seats, %.2f/day [%s]",
			v.ID, v.Year, v.Brand, v.Model, v.Category, v.Seats, v.DailyRate, v.Status))
	}
	return nil
}
