package scannermodels

type Finding struct {
	Resolution Resolution
	Vulnerable bool
	// Resolved is false when the package was judged without a version. Such a finding is
	// reported as secure, which is a known false assurance.
	Resolved bool
}

// ProjectScan holds the results for one project directory. Resolutions are always
// populated; Findings are only set once every package has been evaluated.
type ProjectScan struct {
	ProjectDir  string
	Resolutions []Resolution
	Findings    []Finding
}
