package index

// HubIndex defines the interface for hub registry operations. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type HubIndex interface {
	UpsertHub(h HubRow) error
	DeleteHub(name string) error
	GetHub(name string) (*HubRow, error)
	ListHubs() ([]HubRow, error)
	AllNames() (map[string]struct{}, error)
	Close() error
}

// Verify *DB satisfies HubIndex at compile time.
var _ HubIndex = (*DB)(nil)
