package timezone

import (
	"errors"
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone offsets must not depend on the host's tzdata

	"github.com/ringsaturn/tzf"
)

var ErrUnknownTimezone = errors.New("could not determine timezone")

// Zone is the IANA timezone of a coordinate and its offset at a given instant
type Zone struct {
	Name          string `json:"name" example:"America/Denver" doc:"IANA timezone name"`
	Abbreviation  string `json:"abbreviation" example:"MDT" doc:"Zone abbreviation at the reference time"`
	OffsetSeconds int    `json:"offset_seconds" example:"-21600" doc:"UTC offset at the reference time"`
}

// Service provides timezone lookup functionality
type Service interface {
	Lookup(longitude, latitude float64, at time.Time) (Zone, error)
}

// NameFinder resolves a coordinate to an IANA timezone name
type NameFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

type service struct {
	finder NameFinder
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the process-wide timezone service.
// The tzf finder keeps its polygon data in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// NewServiceWithFinder creates a service over a custom finder
func NewServiceWithFinder(finder NameFinder) Service {
	return &service{finder: finder}
}

// Lookup returns the zone for the given coordinates, e.g. "America/Denver"
func (s *service) Lookup(longitude, latitude float64, at time.Time) (Zone, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return Zone{}, fmt.Errorf("%w for coordinates lat=%f, lon=%f", ErrUnknownTimezone, latitude, longitude)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{Name: name}, nil
	}
	abbr, offset := at.In(loc).Zone()

	return Zone{
		Name:          name,
		Abbreviation:  abbr,
		OffsetSeconds: offset,
	}, nil
}
