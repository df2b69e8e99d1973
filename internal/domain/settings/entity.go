package settings

import "time"

// DefaultProjectTypes seeds the shared list before an admin first writes it.
var DefaultProjectTypes = []string{"GMB", "CC-P1", "CC-P2", "CC-P3", "Automation"}

// ProjectTypes is the single shared settings document read by all task forms.
type ProjectTypes struct {
	Types     []string  `bson:"types"`
	UpdatedBy string    `bson:"updated_by"`
	UpdatedAt time.Time `bson:"updated_at"`
}
