package detectionsources

const (
	InstalledManifest = "node_modules"
	ProjectManifest   = "package.json"
	Lockfile          = "package-lock.json"
	NpmList           = "npm list"
	NextCli           = "next --version"
	None              = "-"
)
