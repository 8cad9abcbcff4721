package trips

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTripNotFound = errors.New("trip not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert writes a trip row for the owning user and returns the saved row.
// This is the only write path: a trip exists only after a fully successful
// generation, and is never updated afterwards.
func (r *Repository) Insert(ctx context.Context, userID string, req CreateTripRequest) (*Trip, error) {
	var trip Trip

	// initialize empty array if nil to avoid null in JSON responses
	interests := req.Interests

	if interests == nil {
		interests = []string{}
	}

	err := r.db.QueryRow(
		ctx,
		queryInsert,
		userID,
		req.Destination,
		interests,
		req.StartDate,
		req.EndDate,
		req.Itinerary,
	).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Destination,
		&trip.Interests,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Itinerary,
		&trip.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &trip, nil
}

// List returns all trips owned by the user, newest first
func (r *Repository) List(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	trips := []Trip{}

	for rows.Next() {
		var t Trip
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Destination,
			&t.Interests,
			&t.StartDate,
			&t.EndDate,
			&t.Itinerary,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

// Get returns a single trip scoped to the owning user
func (r *Repository) Get(ctx context.Context, tripID, userID string) (*Trip, error) {
	var trip Trip

	err := r.db.QueryRow(ctx, queryGet, tripID, userID).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Destination,
		&trip.Interests,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Itinerary,
		&trip.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}

		return nil, err
	}

	return &trip, nil
}

// Delete removes the row outright, scoped to the owning user so one user
// can never delete another's trips
func (r *Repository) Delete(ctx context.Context, tripID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, tripID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}
