package models

// Fixed category enumerations for incident fields. The presentation layer
// reads these to populate form dropdowns; the submission service rejects
// values outside them.
var (
	Antecedents = []string{
		"Demand/Request",
		"Transition",
		"Denied Access",
		"Peer Conflict",
		"Sensory Overload",
		"Unstructured Time",
		"Unknown",
	}

	Behaviours = []string{
		"Physical Aggression",
		"Verbal Aggression",
		"Elopement",
		"Property Destruction",
		"Self-Injury",
		"Refusal/Shutdown",
		"Disruption",
	}

	Consequences = []string{
		"Redirection",
		"Planned Ignoring",
		"Removal from Room",
		"Sent to Office",
		"Parent Contact",
		"Restorative Chat",
		"Sensory Break",
	}

	Locations = []string{
		"Classroom",
		"Playground",
		"Hallway",
		"Library",
		"Gym",
		"Canteen",
		"Off-site",
	}
)

// Catalog bundles the enumerations for a single dropdown-population call.
type Catalog struct {
	Antecedents  []string `json:"antecedents"`
	Behaviours   []string `json:"behaviours"`
	Consequences []string `json:"consequences"`
	Locations    []string `json:"locations"`
	Intensities  []int    `json:"intensities"`
}

// NewCatalog returns the fixed category catalog.
func NewCatalog() Catalog {
	return Catalog{
		Antecedents:  Antecedents,
		Behaviours:   Behaviours,
		Consequences: Consequences,
		Locations:    Locations,
		Intensities:  []int{1, 2, 3, 4, 5},
	}
}

// InCatalog reports whether value is present in the given enumeration.
func InCatalog(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
