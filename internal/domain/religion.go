package domain

// Religion represents a faith tradition the service can arrange last rites for
type Religion struct {
	ID          string
	Name        string
	Description string
	Icon        string
}
