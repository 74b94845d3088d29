package refdata

import (
	"context"
	"encoding/json"
	"io/fs"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

const (
	dailiesFile       = "dailies.json"
	fractalsFile      = "fractals.json"
	instabilitiesFile = "instabilities.json"
)

type localizedName struct {
	En string `json:"en"`
}

type dailiesDoc struct {
	Dailies [][]string `json:"dailies"`
}

type fractalsDoc struct {
	FractalDetails map[string]struct {
		Name   localizedName `json:"name"`
		Scales []int         `json:"scales"`
	} `json:"fractal_details"`
}

type instabilitiesDoc struct {
	Instabilities      map[string][][]string `json:"instabilities"`
	InstabilityDetails map[string]struct {
		Name localizedName `json:"name"`
	} `json:"instability_details"`
}

type jsonRepo struct {
	fsys fs.FS
}

// NewJSONRepo reads the reference tables from dailies.json, fractals.json and
// instabilities.json at the root of fsys.
func NewJSONRepo(fsys fs.FS) contract.ReferenceRepo {
	return &jsonRepo{fsys: fsys}
}

func (r *jsonRepo) Load(ctx context.Context) (*entity.ReferenceData, error) {
	var dailies dailiesDoc
	if err := r.decode(dailiesFile, &dailies); err != nil {
		return nil, err
	}

	var fractals fractalsDoc
	if err := r.decode(fractalsFile, &fractals); err != nil {
		return nil, err
	}

	var instabs instabilitiesDoc
	if err := r.decode(instabilitiesFile, &instabs); err != nil {
		return nil, err
	}

	ref := &entity.ReferenceData{
		DailyRotation:       dailies.Dailies,
		Fractals:            make(map[string]entity.Fractal, len(fractals.FractalDetails)),
		InstabilityRotation: make(map[string][][]string, len(instabs.Instabilities)),
		Instabilities:       make(map[string]entity.Instability, len(instabs.InstabilityDetails)),
	}

	for id, f := range fractals.FractalDetails {
		ref.Fractals[id] = entity.Fractal{ID: id, Name: f.Name.En, Scales: f.Scales}
	}

	for scale, slots := range instabs.Instabilities {
		// keys are used verbatim by lookups, reject "076" style keys early
		n, err := strconv.Atoi(scale)
		if err != nil || strconv.Itoa(n) != scale {
			return nil, errors.Newf("invalid scale key %q in %s", scale, instabilitiesFile)
		}
		ref.InstabilityRotation[scale] = slots
	}

	for id, i := range instabs.InstabilityDetails {
		ref.Instabilities[id] = entity.Instability{ID: id, Name: i.Name.En}
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return ref, nil
}

func (r *jsonRepo) decode(name string, v any) error {
	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}

	return nil
}
