package scannermodels

// PackageManifest is the subset of a package.json this tool reads, for both the
// project's own manifest and an installed package's manifest.
type PackageManifest struct {
	Name             string            `json:"name,omitempty"`
	Version          string            `json:"version,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
}

// DependencySections returns the declaration sections in lookup order.
func (m PackageManifest) DependencySections() []map[string]string {
	return []map[string]string{m.Dependencies, m.DevDependencies, m.PeerDependencies}
}
