package domain

// MoodyPoint is one (Re, f) sample on a friction-factor curve.
type MoodyPoint struct {
	// Reynolds is the Reynolds number of the sample.
	Reynolds float64

	// Friction is the Darcy friction factor at that Reynolds number.
	Friction float64
}

// MoodySweep configures a friction-factor-vs-Reynolds sweep for the
// Moody diagram background curve.
type MoodySweep struct {
	// RelativeRoughness is the fixed eps/D for the curve.
	RelativeRoughness float64

	// MinReynolds is the lower sweep bound (exclusive of zero).
	MinReynolds float64

	// MaxReynolds is the upper sweep bound.
	MaxReynolds float64

	// Points is the number of logarithmically spaced samples.
	Points int
}

// Sweep bounds used when the caller leaves MoodySweep fields zero.
const (
	DefaultMoodyMinReynolds = 1e3
	DefaultMoodyMaxReynolds = 1e8
	DefaultMoodyPoints      = 200
)

// Normalised returns a copy with defaults applied to zero fields.
func (s MoodySweep) Normalised() MoodySweep {
	if s.MinReynolds <= 0 {
		s.MinReynolds = DefaultMoodyMinReynolds
	}
	if s.MaxReynolds <= s.MinReynolds {
		s.MaxReynolds = DefaultMoodyMaxReynolds
	}
	if s.Points < 2 {
		s.Points = DefaultMoodyPoints
	}
	return s
}
