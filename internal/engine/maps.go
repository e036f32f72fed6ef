package engine

type MapStatus string

const (
	StatusAvailable MapStatus = "available"
	StatusBanned    MapStatus = "banned"
	StatusPicked    MapStatus = "picked"
)

type Map struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   MapStatus `json:"status"`
	BannedBy string    `json:"banned_by,omitempty"`
	PickedBy string    `json:"picked_by,omitempty"`
	Image    string    `json:"image"`
}

// Catalog is the active map pool in display order.
var Catalog = []Map{
	{ID: "train", Name: "Train", Image: "/maps/train.webp"},
	{ID: "inferno", Name: "Inferno", Image: "/maps/inferno.jpeg"},
	{ID: "mirage", Name: "Mirage", Image: "/maps/mirage.webp"},
	{ID: "nuke", Name: "Nuke", Image: "/maps/nuke.webp"},
	{ID: "dust2", Name: "Dust 2", Image: "/maps/dust2.webp"},
	{ID: "ancient", Name: "Ancient", Image: "/maps/ancient.webp"},
	{ID: "anubis", Name: "Anubis", Image: "/maps/anubis.webp"},
}

// NewMapPool returns a fresh copy of the catalog with every map available.
func NewMapPool() []Map {
	pool := make([]Map, len(Catalog))
	for i, m := range Catalog {
		m.Status = StatusAvailable
		pool[i] = m
	}
	return pool
}

func findMap(maps []Map, id string) int {
	for i, m := range maps {
		if m.ID == id {
			return i
		}
	}
	return -1
}
