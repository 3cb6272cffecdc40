package domain

// Service represents an add-on service (priest, cremation, burial, transport).
// A service may apply to several religions at once.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       int
	Duration    string // optional, e.g. "3-4 hours"
	Religions   []string
}

// AppliesTo returns true if the service is offered for the given religion
func (s *Service) AppliesTo(religionID string) bool {
	for _, id := range s.Religions {
		if id == religionID {
			return true
		}
	}
	return false
}
