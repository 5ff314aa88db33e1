package stations

import (
	"context"
	"database/sql"
	"strings"

	"vibrovolt/internal/models"
)

// PostgresRepository reads the station directory from Postgres. Same contract
// as MemoryRepository; selected via config when a DSN is present.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns repository.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all stations ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Station, error) {
	const query = `
		SELECT id, name, location, lat, lng, distance, type, price,
		       available, total, rating, on_demand, supported_vehicles
		FROM stations
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Station
	for rows.Next() {
		var station models.Station
		var vehicles string
		if err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Location,
			&station.Lat,
			&station.Lng,
			&station.Distance,
			&station.Type,
			&station.Price,
			&station.Available,
			&station.Total,
			&station.Rating,
			&station.OnDemand,
			&vehicles,
		); err != nil {
			return nil, err
		}
		for _, v := range strings.Split(vehicles, ",") {
			if v = strings.TrimSpace(v); v != "" {
				station.SupportedVehicles = append(station.SupportedVehicles, models.VehicleCategory(v))
			}
		}
		out = append(out, station)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
