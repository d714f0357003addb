// Package catalog holds the fixed list of intern onboarding steps.
//
// The catalog is reference data compiled into the binary. It is never
// mutated at runtime; every call to Steps returns the same records in the
// same order.
package catalog

// Category groups related onboarding steps.
type Category int

const (
	CategoryOrientation Category = iota
	CategoryEnvironmentSetup
	CategoryAndroidBasics
	CategoryProjects
)

// categoryInfo is the display metadata attached to each Category.
type categoryInfo struct {
	key         string
	displayName string
	color       string
}

var categoryTable = map[Category]categoryInfo{
	CategoryOrientation:      {"orientation", "Company Orientation", "#6200EE"},
	CategoryEnvironmentSetup: {"environment_setup", "Environment Setup", "#3700B3"},
	CategoryAndroidBasics:    {"android_basics", "Android Development Basics", "#03DAC6"},
	CategoryProjects:         {"projects", "Hands-on Projects", "#FF6200"},
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryOrientation,
		CategoryEnvironmentSetup,
		CategoryAndroidBasics,
		CategoryProjects,
	}
}

// String returns the stable key of the category.
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.key
	}
	return "unknown"
}

// DisplayName returns the human readable category name.
func (c Category) DisplayName() string {
	if info, ok := categoryTable[c]; ok {
		return info.displayName
	}
	return "Unknown"
}

// Color returns the category color token as a hex string.
func (c Category) Color() string {
	if info, ok := categoryTable[c]; ok {
		return info.color
	}
	return "#9E9E9E"
}

// ResourceType classifies a Resource link.
type ResourceType int

const (
	ResourceDownloadLink ResourceType = iota
	ResourceTutorial
	ResourceDocumentation
	ResourceVideo
	ResourceInteractiveGuide
)

// String returns the display name of the resource type.
func (t ResourceType) String() string {
	switch t {
	case ResourceDownloadLink:
		return "Download"
	case ResourceTutorial:
		return "Tutorial"
	case ResourceDocumentation:
		return "Documentation"
	case ResourceVideo:
		return "Video"
	case ResourceInteractiveGuide:
		return "Interactive Guide"
	default:
		return "Unknown"
	}
}

// PlaceholderURL marks a resource that has no link yet.
const PlaceholderURL = "#"

// Resource is a reference attached to a step.
type Resource struct {
	Title string
	URL   string
	Type  ResourceType
}

// HasLink reports whether the resource points somewhere real.
func (r Resource) HasLink() bool {
	return r.URL != "" && r.URL != PlaceholderURL
}

// Step is one onboarding task. Completion is not part of a Step; it is
// derived from persisted progress.
type Step struct {
	ID            string
	Title         string
	Description   string
	Category      Category
	Order         int
	EstimatedTime string
	Resources     []Resource
}
