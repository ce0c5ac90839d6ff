package scannermodels

type LockedPackage struct {
	Version  string `json:"version,omitempty"`
	Resolved string `json:"resolved,omitempty"`
}

type PackageLock struct {
	Name            string                   `json:"name,omitempty"`
	Version         string                   `json:"version,omitempty"`
	LockfileVersion int                      `json:"lockfileVersion,omitempty"`
	Packages        map[string]LockedPackage `json:"packages"` // keyed by install path, e.g. node_modules/react
}
