package trackedpackages

const (
	React = "react"
	Next  = "next"
)

// display names used in the console report
const (
	ReactDisplayName = "React"
	NextDisplayName  = "Next.js"
)

var All = []string{React, Next}

func DisplayName(pkg string) string {
	switch pkg {
	case React:
		return ReactDisplayName
	case Next:
		return NextDisplayName
	default:
		return pkg
	}
}
