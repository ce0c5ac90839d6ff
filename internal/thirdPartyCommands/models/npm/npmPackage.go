package npmmodels

type NpmPackage struct {
	Version      string                `json:"version"`
	Resolved     string                `json:"resolved,omitempty"`
	Dependencies map[string]NpmPackage `json:"dependencies,omitempty"`
}
