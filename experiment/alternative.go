package experiment

// Alternative is one named variant of an experiment. Alternatives are compared by name.
type Alternative struct {
	Name string `json:"name" yaml:"name"`
}

// NewAlternative returns the Alternative with the given name.
func NewAlternative(name string) Alternative {
	return Alternative{Name: name}
}

// String returns the alternative name.
//
// Implements the fmt.Stringer interface.
func (a Alternative) String() string {
	return a.Name
}

// NewAlternatives returns an Alternative for each name, in order.
func NewAlternatives(names ...string) []Alternative {
	alts := make([]Alternative, 0, len(names))
	for _, n := range names {
		alts = append(alts, NewAlternative(n))
	}

	return alts
}
