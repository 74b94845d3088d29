package database

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

type referenceRepo struct {
	db dbConn
}

func newReferenceRepo(db dbConn) *referenceRepo {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) load(ctx context.Context) (*entity.ReferenceData, error) {
	ref := &entity.ReferenceData{
		DailyRotation:       emptySlots(),
		Fractals:            make(map[string]entity.Fractal),
		InstabilityRotation: make(map[string][][]string),
		Instabilities:       make(map[string]entity.Instability),
	}

	if err := r.loadFractals(ctx, ref); err != nil {
		return nil, err
	}
	if err := r.loadInstabilities(ctx, ref); err != nil {
		return nil, err
	}
	if err := r.loadDailyRotation(ctx, ref); err != nil {
		return nil, err
	}
	if err := r.loadInstabilityScales(ctx, ref); err != nil {
		return nil, err
	}
	if err := r.loadInstabilityRotation(ctx, ref); err != nil {
		return nil, err
	}

	return ref, nil
}

func (r *referenceRepo) loadFractals(ctx context.Context, ref *entity.ReferenceData) error {
	query := `
		SELECT f.id, f.name, s.scale
		FROM fractals f
		LEFT JOIN fractal_scales s ON s.fractal_id = f.id
		ORDER BY f.id, s.position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "failed to query fractals")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, name string
			scale    *int
		)
		if err := rows.Scan(&id, &name, &scale); err != nil {
			return errors.Wrap(err, "failed to scan fractal")
		}

		fractal, ok := ref.Fractals[id]
		if !ok {
			fractal = entity.Fractal{ID: id, Name: name}
		}
		if scale != nil {
			fractal.Scales = append(fractal.Scales, *scale)
		}
		ref.Fractals[id] = fractal
	}

	return rows.Err()
}

func (r *referenceRepo) loadInstabilities(ctx context.Context, ref *entity.ReferenceData) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM instabilities`)
	if err != nil {
		return errors.Wrap(err, "failed to query instabilities")
	}
	defer rows.Close()

	for rows.Next() {
		var instab entity.Instability
		if err := rows.Scan(&instab.ID, &instab.Name); err != nil {
			return errors.Wrap(err, "failed to scan instability")
		}
		ref.Instabilities[instab.ID] = instab
	}

	return rows.Err()
}

func (r *referenceRepo) loadDailyRotation(ctx context.Context, ref *entity.ReferenceData) error {
	query := `
		SELECT slot, fractal_id
		FROM daily_rotation
		ORDER BY slot, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "failed to query daily rotation")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot      int
			fractalID string
		)
		if err := rows.Scan(&slot, &fractalID); err != nil {
			return errors.Wrap(err, "failed to scan daily rotation")
		}
		ref.DailyRotation = appendToSlot(ref.DailyRotation, slot, fractalID)
	}

	return rows.Err()
}

// loadInstabilityScales registers every scale key, including scales whose
// slots are all empty and therefore have no rotation rows.
func (r *referenceRepo) loadInstabilityScales(ctx context.Context, ref *entity.ReferenceData) error {
	rows, err := r.db.QueryContext(ctx, `SELECT scale FROM instability_scales`)
	if err != nil {
		return errors.Wrap(err, "failed to query instability scales")
	}
	defer rows.Close()

	for rows.Next() {
		var scale int
		if err := rows.Scan(&scale); err != nil {
			return errors.Wrap(err, "failed to scan instability scale")
		}
		ref.InstabilityRotation[strconv.Itoa(scale)] = emptySlots()
	}

	return rows.Err()
}

func (r *referenceRepo) loadInstabilityRotation(ctx context.Context, ref *entity.ReferenceData) error {
	query := `
		SELECT scale, slot, instability_id
		FROM instability_rotation
		ORDER BY scale, slot, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "failed to query instability rotation")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scale, slot   int
			instabilityID string
		)
		if err := rows.Scan(&scale, &slot, &instabilityID); err != nil {
			return errors.Wrap(err, "failed to scan instability rotation")
		}
		key := strconv.Itoa(scale)
		slots, ok := ref.InstabilityRotation[key]
		if !ok {
			return domain.DataConsistencyf("instability rotation references unregistered scale %d", scale)
		}
		ref.InstabilityRotation[key] = appendToSlot(slots, slot, instabilityID)
	}

	return rows.Err()
}

func (r *referenceRepo) clear(ctx context.Context) error {
	for _, table := range []string{"instability_rotation", "instability_scales", "daily_rotation", "fractal_scales", "instabilities", "fractals"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "failed to clear %s", table)
		}
	}
	return nil
}

func (r *referenceRepo) save(ctx context.Context, ref *entity.ReferenceData) error {
	for _, fractal := range ref.Fractals {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO fractals (id, name) VALUES (?, ?)`, fractal.ID, fractal.Name); err != nil {
			return errors.Wrapf(err, "failed to insert fractal %s", fractal.ID)
		}
		for position, scale := range fractal.Scales {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO fractal_scales (fractal_id, position, scale) VALUES (?, ?, ?)`,
				fractal.ID, position, scale,
			); err != nil {
				return errors.Wrapf(err, "failed to insert scale of fractal %s", fractal.ID)
			}
		}
	}

	for _, instab := range ref.Instabilities {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO instabilities (id, name) VALUES (?, ?)`, instab.ID, instab.Name); err != nil {
			return errors.Wrapf(err, "failed to insert instability %s", instab.ID)
		}
	}

	dailyStmt, err := r.db.PrepareContext(ctx, `INSERT INTO daily_rotation (slot, position, fractal_id) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare daily rotation insert")
	}
	defer dailyStmt.Close()

	for slot, fractalIDs := range ref.DailyRotation {
		for position, fractalID := range fractalIDs {
			if _, err := dailyStmt.ExecContext(ctx, slot, position, fractalID); err != nil {
				return errors.Wrapf(err, "failed to insert daily rotation slot %d", slot)
			}
		}
	}

	instabStmt, err := r.db.PrepareContext(ctx, `INSERT INTO instability_rotation (scale, slot, position, instability_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare instability rotation insert")
	}
	defer instabStmt.Close()

	for key, slots := range ref.InstabilityRotation {
		scale, err := strconv.Atoi(key)
		if err != nil {
			return errors.Wrapf(err, "invalid scale key %q", key)
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO instability_scales (scale) VALUES (?)`, scale); err != nil {
			return errors.Wrapf(err, "failed to insert instability scale %d", scale)
		}
		for slot, instabilityIDs := range slots {
			for position, instabilityID := range instabilityIDs {
				if _, err := instabStmt.ExecContext(ctx, scale, slot, position, instabilityID); err != nil {
					return errors.Wrapf(err, "failed to insert instability rotation for scale %d slot %d", scale, slot)
				}
			}
		}
	}

	return nil
}

// emptySlots returns one empty slot per rotation day.
func emptySlots() [][]string {
	slots := make([][]string, domain.RotationLength)
	for i := range slots {
		slots[i] = []string{}
	}
	return slots
}

// appendToSlot grows slots so that slot exists, then appends id to it.
func appendToSlot(slots [][]string, slot int, id string) [][]string {
	for len(slots) <= slot {
		slots = append(slots, nil)
	}
	slots[slot] = append(slots[slot], id)
	return slots
}
