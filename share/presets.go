package share

// Environment is a lighting environment which the renderer can light the tube
// with. The names are the HDR presets the browser renderer ships with.
type Environment struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Material describes how the tube surface is shaded.
type Material struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	Metalness    float64 `json:"metalness"`
	Roughness    float64 `json:"roughness"`
	Transmission float64 `json:"transmission,omitempty"`
	Emissive     string  `json:"emissive,omitempty"`
}

const (
	DefaultEnvironment = "sunset"
	DefaultMaterial    = "standard"
)

var Environments = []Environment{
	{"apartment", "Apartment"},
	{"city", "City"},
	{"dawn", "Dawn"},
	{"forest", "Forest"},
	{"lobby", "Lobby"},
	{"night", "Night"},
	{"park", "Park"},
	{"studio", "Studio"},
	{"sunset", "Sunset"},
	{"warehouse", "Warehouse"},
}

var Materials = []Material{
	{Name: "standard", Label: "Standard", Color: "#ff4d4d", Metalness: 0.1, Roughness: 0.5},
	{Name: "metallic", Label: "Metallic", Color: "#c0c0c0", Metalness: 0.9, Roughness: 0.25},
	{Name: "glass", Label: "Glass", Color: "#ffffff", Metalness: 0, Roughness: 0.05, Transmission: 1},
	{Name: "matte", Label: "Matte", Color: "#4d79ff", Metalness: 0, Roughness: 1},
	{Name: "chrome", Label: "Chrome", Color: "#ffffff", Metalness: 1, Roughness: 0},
	{Name: "neon", Label: "Neon", Color: "#39ff14", Metalness: 0, Roughness: 0.3, Emissive: "#39ff14"},
}

// ValidEnvironment returns true if name is one of Environments.
func ValidEnvironment(name string) bool {
	for _, e := range Environments {
		if e.Name == name {
			return true
		}
	}
	return false
}

// LookupMaterial returns the material with the given name.
func LookupMaterial(name string) (Material, bool) {
	for _, m := range Materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
