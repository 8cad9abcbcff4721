package trips

const (
	queryInsert = `
		INSERT INTO trips (user_id, destination, interests, start_date, end_date, itinerary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, destination, interests, start_date, end_date, itinerary, created_at
	`

	queryList = `
		SELECT id, user_id, destination, interests, start_date, end_date, itinerary, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, user_id, destination, interests, start_date, end_date, itinerary, created_at
		FROM trips
		WHERE id = $1 AND user_id = $2
	`

	queryDelete = `
		DELETE FROM trips
		WHERE id = $1 AND user_id = $2
	`
)
