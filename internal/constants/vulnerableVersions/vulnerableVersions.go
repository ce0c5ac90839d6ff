package vulnerableversions

type VersionRange struct {
	Start string
	End   string
}

var React = []string{"19.0.0", "19.1.0", "19.1.1", "19.2.0"}

// one inclusive range per minor release line
var NextRanges = []VersionRange{
	{Start: "15.0.0", End: "15.0.4"},
	{Start: "15.1.0", End: "15.1.8"},
	{Start: "15.2.0", End: "15.2.5"},
	{Start: "15.3.0", End: "15.3.5"},
	{Start: "15.4.0", End: "15.4.7"},
	{Start: "15.5.0", End: "15.5.6"},
	{Start: "16.0.0", End: "16.0.6"},
}
