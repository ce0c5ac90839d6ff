package scanstatus

const (
	Vulnerable = "VULNERABLE"
	Secure     = "SECURE"
	// Unresolved marks a package reported as secure only because no version was found.
	Unresolved = "UNRESOLVED"
)
