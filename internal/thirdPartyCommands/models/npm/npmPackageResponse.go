package npmmodels

// NpmPackageResponse is the document printed by `npm list --json`.
type NpmPackageResponse struct {
	Version     string                `json:"version"`
	ServiceName string                `json:"name"`
	NpmPackage  map[string]NpmPackage `json:"dependencies"`
}
