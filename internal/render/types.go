package render

const (
	// Display values
	NAValue      = "n/a"
	UnknownValue = "<unknown>"

	// Sort markers
	AscIndicator  = "↑"
	DescIndicator = "↓"

	// Table states
	LoadingText     = "Loading..."
	LoadingMoreText = "Loading more..."
	NoResultsText   = "No results"
)
