package catalog

// Steps returns the onboarding steps in catalog order, which is also
// ascending Order. A fresh slice is returned on every call so callers may
// annotate or reorder it freely.
func Steps() []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Resources = append([]Resource(nil), s.Resources...)
		out[i] = s
	}
	return out
}

// Lookup returns the step with the given id.
func Lookup(id string) (Step, bool) {
	for _, s := range steps {
		if s.ID == id {
			s.Resources = append([]Resource(nil), s.Resources...)
			return s, true
		}
	}
	return Step{}, false
}

// IDs returns every step id in catalog order.
func IDs() []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

var steps = []Step{
	// Company orientation
	{
		ID:            "orientation_culture",
		Title:         "Company Culture Overview",
		Description:   "Learn about our company values, mission, and work culture",
		Category:      CategoryOrientation,
		Order:         1,
		EstimatedTime: "30 minutes",
		Resources: []Resource{
			{"Company Values Presentation", PlaceholderURL, ResourceVideo},
			{"Employee Handbook", PlaceholderURL, ResourceDocumentation},
		},
	},
	{
		ID:            "orientation_goals",
		Title:         "Internship Goals & Expectations",
		Description:   "Understand your internship objectives and success metrics",
		Category:      CategoryOrientation,
		Order:         2,
		EstimatedTime: "20 minutes",
		Resources: []Resource{
			{"Internship Program Guide", PlaceholderURL, ResourceDocumentation},
		},
	},
	{
		ID:            "team_introduction",
		Title:         "Meet Your Team",
		Description:   "Get introduced to team members, mentors, and key stakeholders",
		Category:      CategoryOrientation,
		Order:         3,
		EstimatedTime: "45 minutes",
		Resources: []Resource{
			{"Team Directory", PlaceholderURL, ResourceDocumentation},
			{"Mentor Assignment", PlaceholderURL, ResourceDocumentation},
		},
	},

	// Environment setup
	{
		ID:            "android_studio_install",
		Title:         "Install Android Studio",
		Description:   "Download and install Android Studio IDE on your development machine",
		Category:      CategoryEnvironmentSetup,
		Order:         4,
		EstimatedTime: "30 minutes",
		Resources: []Resource{
			{"Download Android Studio", "https://developer.android.com/studio", ResourceDownloadLink},
			{"Installation Guide", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "android_studio_config",
		Title:         "Configure Android Studio",
		Description:   "Set up Android Studio with necessary plugins and preferences",
		Category:      CategoryEnvironmentSetup,
		Order:         5,
		EstimatedTime: "20 minutes",
		Resources: []Resource{
			{"Configuration Tutorial", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "sdk_install",
		Title:         "Install Android SDKs",
		Description:   "Install required Android SDK versions and build tools",
		Category:      CategoryEnvironmentSetup,
		Order:         6,
		EstimatedTime: "25 minutes",
		Resources: []Resource{
			{"SDK Manager Guide", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "java_kotlin_setup",
		Title:         "Java/Kotlin Development Setup",
		Description:   "Ensure proper Java and Kotlin development environment",
		Category:      CategoryEnvironmentSetup,
		Order:         7,
		EstimatedTime: "15 minutes",
		Resources: []Resource{
			{"Kotlin Setup Guide", PlaceholderURL, ResourceTutorial},
			{"Java Development Guide", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "gradle_setup",
		Title:         "Gradle Configuration",
		Description:   "Learn about Gradle build system and project configuration",
		Category:      CategoryEnvironmentSetup,
		Order:         8,
		EstimatedTime: "20 minutes",
		Resources: []Resource{
			{"Gradle Basics", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "git_setup",
		Title:         "Git Installation & Configuration",
		Description:   "Install Git and configure your development environment",
		Category:      CategoryEnvironmentSetup,
		Order:         9,
		EstimatedTime: "15 minutes",
		Resources: []Resource{
			{"Download Git", "https://git-scm.com/downloads", ResourceDownloadLink},
			{"Git Configuration Guide", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "github_account",
		Title:         "Create GitHub Account",
		Description:   "Set up your GitHub account and configure SSH keys",
		Category:      CategoryEnvironmentSetup,
		Order:         10,
		EstimatedTime: "15 minutes",
		Resources: []Resource{
			{"GitHub Signup", "https://github.com/join", ResourceDownloadLink},
			{"SSH Key Setup", PlaceholderURL, ResourceTutorial},
		},
	},

	// Android development basics
	{
		ID:            "android_fundamentals",
		Title:         "Android Development Fundamentals",
		Description:   "Learn the core concepts of Android app development",
		Category:      CategoryAndroidBasics,
		Order:         11,
		EstimatedTime: "60 minutes",
		Resources: []Resource{
			{"Android Developer Guide", "https://developer.android.com/guide", ResourceDocumentation},
			{"Fundamentals Tutorial", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "activities_fragments",
		Title:         "Activities and Fragments",
		Description:   "Understand the building blocks of Android apps",
		Category:      CategoryAndroidBasics,
		Order:         12,
		EstimatedTime: "45 minutes",
		Resources: []Resource{
			{"Activities Guide", PlaceholderURL, ResourceTutorial},
			{"Fragments Tutorial", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "layouts_views",
		Title:         "Layouts and Views",
		Description:   "Learn about Android UI components and layout systems",
		Category:      CategoryAndroidBasics,
		Order:         13,
		EstimatedTime: "50 minutes",
		Resources: []Resource{
			{"Layout Guide", PlaceholderURL, ResourceTutorial},
			{"Views and ViewGroups", PlaceholderURL, ResourceTutorial},
		},
	},
	{
		ID:            "intro_tutorials",
		Title:         "Complete Introductory Tutorials",
		Description:   "Work through beginner-friendly Android development tutorials",
		Category:      CategoryAndroidBasics,
		Order:         14,
		EstimatedTime: "90 minutes",
		Resources: []Resource{
			{"Your First App Tutorial", PlaceholderURL, ResourceInteractiveGuide},
			{"Building a Simple UI", PlaceholderURL, ResourceInteractiveGuide},
		},
	},

	// Hands-on projects
	{
		ID:            "hello_world_project",
		Title:         "Hello World Project",
		Description:   "Create your first Android application",
		Category:      CategoryProjects,
		Order:         15,
		EstimatedTime: "45 minutes",
		Resources: []Resource{
			{"Hello World Tutorial", PlaceholderURL, ResourceInteractiveGuide},
		},
	},
	{
		ID:            "calculator_project",
		Title:         "Simple Calculator App",
		Description:   "Build a basic calculator to practice layouts and event handling",
		Category:      CategoryProjects,
		Order:         16,
		EstimatedTime: "2 hours",
		Resources: []Resource{
			{"Calculator Project Guide", PlaceholderURL, ResourceInteractiveGuide},
		},
	},
	{
		ID:            "todo_project",
		Title:         "Todo List App",
		Description:   "Create a todo list app to learn data persistence and lists",
		Category:      CategoryProjects,
		Order:         17,
		EstimatedTime: "3 hours",
		Resources: []Resource{
			{"Todo App Tutorial", PlaceholderURL, ResourceInteractiveGuide},
		},
	},
}
