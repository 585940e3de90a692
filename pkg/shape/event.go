package shape

// triggerHalfWidth is the number of samples the trigger pulse extends on each
// side of the center index.
const triggerHalfWidth = 5

// Trigger is a physiological trigger marker: a 10-sample-wide unit pulse
// centered in the sequence. For short sequences the pulse is clipped at the
// slice bounds.
type Trigger struct {
	numPoints int
	samples   []float64
}

// NewTrigger creates a trigger marker generator.
func NewTrigger(numPoints int) (*Trigger, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Trigger{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Trigger) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		center := s.numPoints / 2
		lo := max(center-triggerHalfWidth, 0)
		hi := min(center+triggerHalfWidth, s.numPoints)
		for i := lo; i < hi; i++ {
			raw[i] = 1.0
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Flag is an annotation marker: a single unit sample at the center index.
type Flag struct {
	numPoints int
	samples   []float64
}

// NewFlag creates a flag marker generator.
func NewFlag(numPoints int) (*Flag, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Flag{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Flag) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		raw[s.numPoints/2] = 1.0
		s.samples = Normalize(raw)
	}
	return s.samples
}
