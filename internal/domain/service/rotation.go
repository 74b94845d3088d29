package service

import (
	"slices"
	"time"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type fractalService struct {
	ref            *entity.ReferenceData
	classification entity.Classification
	clock          func() time.Time
	log            *zap.Logger
}

func newFractal(ref *entity.ReferenceData, classification entity.Classification, clock func() time.Time, log *zap.Logger) *fractalService {
	if clock == nil {
		clock = time.Now
	}

	return &fractalService{
		ref:            ref,
		classification: classification,
		clock:          clock,
		log:            log,
	}
}

// DailyIndex maps a calendar date to its slot in the 15 day rotation.
//
// The rotation restarts every January 1 and always counts days as if
// February had 29 days, so in non leap years every day from March 1 on is
// shifted by one. January 1 is index 1.
func (s *fractalService) DailyIndex(date time.Time) (int, error) {
	if date.IsZero() {
		return 0, domain.ErrCalendarComputation
	}

	daysPassed := date.YearDay() - 1

	if !isLeapYear(date.Year()) && daysPassed > domain.LastDayBeforeLeapDay {
		daysPassed++
	}

	return (daysPassed + 1) % domain.RotationLength, nil
}

// DailyFractals returns the fractals of the given rotation slot. Raw day
// counts are accepted and reduced modulo the rotation length.
func (s *fractalService) DailyFractals(index int) []string {
	return s.ref.DailyRotation[slot(index)]
}

// DailyInstabilities resolves the instability names active today on the
// hardest scale of each fractal.
func (s *fractalService) DailyInstabilities(index int, fractalIDs []string) (map[string][]string, error) {
	instabs := make(map[string][]string, len(fractalIDs))

	for _, fractalID := range fractalIDs {
		fractal, ok := s.ref.Fractals[fractalID]
		if !ok {
			return nil, domain.DataConsistencyf("fractal %q not found in catalog", fractalID)
		}

		scale, ok := fractal.HardestScale()
		if !ok {
			return nil, domain.DataConsistencyf("fractal %q has no scales", fractalID)
		}

		rotation, ok := s.ref.InstabilityRotation[scale]
		if !ok {
			return nil, domain.DataConsistencyf("scale %s of fractal %q has no instability rotation", scale, fractalID)
		}
		if len(rotation) != domain.RotationLength {
			return nil, domain.DataConsistencyf("instability rotation for scale %s has %d slots", scale, len(rotation))
		}

		ids := rotation[slot(index)]
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			instab, ok := s.ref.Instabilities[id]
			if !ok {
				return nil, domain.DataConsistencyf("instability %q not found in catalog", id)
			}
			names = append(names, instab.Name)
		}

		instabs[fractalID] = names
	}

	return instabs, nil
}

// DailyFacts computes today's facts from the clock.
func (s *fractalService) DailyFacts() (*entity.DailyFacts, error) {
	today := s.clock()

	index, err := s.DailyIndex(today)
	if err != nil {
		return nil, err
	}

	active := s.DailyFractals(index)
	interest := fractalsOfInterest(active, s.classification.Featured)

	instabs, err := s.DailyInstabilities(index, interest)
	if err != nil {
		return nil, err
	}

	facts := &entity.DailyFacts{
		Date:           today,
		Index:          index,
		ActiveFractals: active,
		Instabilities:  instabs,
	}

	if facts.Featured, err = s.namesIn(s.classification.Featured, active); err != nil {
		return nil, err
	}
	if facts.Undesirable, err = s.namesIn(s.classification.Undesirable, active); err != nil {
		return nil, err
	}

	for _, fractalID := range interest {
		if !slices.Contains(instabs[fractalID], s.classification.NamedEffect) {
			continue
		}
		name, err := s.FractalName(fractalID)
		if err != nil {
			return nil, err
		}
		facts.WithNamedEffect = append(facts.WithNamedEffect, name)
	}

	s.log.Debug("daily facts resolved",
		zap.Time("date", today),
		zap.Int("index", index),
		zap.Strings("active", active),
		zap.Strings("featured", facts.Featured),
		zap.Strings("undesirable", facts.Undesirable),
		zap.Strings("with_named_effect", facts.WithNamedEffect),
	)

	return facts, nil
}

// FractalName returns the display name of a fractal.
func (s *fractalService) FractalName(fractalID string) (string, error) {
	fractal, ok := s.ref.Fractals[fractalID]
	if !ok {
		return "", domain.DataConsistencyf("fractal %q not found in catalog", fractalID)
	}
	return fractal.Name, nil
}

// namesIn returns the display names of the set members that are active,
// in set order.
func (s *fractalService) namesIn(set, active []string) ([]string, error) {
	var names []string
	for _, fractalID := range set {
		if !slices.Contains(active, fractalID) {
			continue
		}
		name, err := s.FractalName(fractalID)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// fractalsOfInterest is the active list followed by the featured fractals
// that are not active today.
func fractalsOfInterest(active, featured []string) []string {
	interest := make([]string, 0, len(active)+len(featured))
	interest = append(interest, active...)
	for _, fractalID := range featured {
		if !slices.Contains(interest, fractalID) {
			interest = append(interest, fractalID)
		}
	}
	return interest
}

func slot(index int) int {
	return ((index % domain.RotationLength) + domain.RotationLength) % domain.RotationLength
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
