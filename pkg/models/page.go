package models

// PageContent is the editable content of one public page. ID is the page slug.
// Sections is informational only; Updated is a human-readable stamp the admin
// panel shows next to the page name.
type PageContent struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Sections int      `json:"sections"`
	Updated  string   `json:"updated"`
	Content  PageBody `json:"content"`
}

// PageBody holds the per-page content blocks. Which blocks a page uses depends
// on the page; absent blocks are omitted from the serialized form. Sub-arrays
// are replaced wholesale on save, never merged item by item.
type PageBody struct {
	Hero          *HeroBlock       `json:"hero,omitempty"`
	Features      []FeatureItem    `json:"features,omitempty"`
	Projects      []ProjectItem    `json:"projects,omitempty"`
	Solutions     []FeatureItem    `json:"solutions,omitempty"`
	Capabilities  []CapabilityItem `json:"capabilities,omitempty"`
	Stats         []StatItem       `json:"stats,omitempty"`
	Values        []ValueItem      `json:"values,omitempty"`
	Technologies  []string         `json:"technologies,omitempty"`
	WorkflowSteps []ProcessStep    `json:"workflowSteps,omitempty"`
	Advantages    []FeatureItem    `json:"advantages,omitempty"`
	CaseStudies   []CaseStudy      `json:"caseStudies,omitempty"`
	Sections      []ContentSection `json:"sections"`
}

// HeroBlock is the lead block of a page.
type HeroBlock struct {
	Badge       string `json:"badge,omitempty"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	CTAText     string `json:"ctaText,omitempty"`
	CTALink     string `json:"ctaLink,omitempty"`
}

// FeatureItem is a titled card with an optional link and icon. It backs the
// features, solutions and advantages blocks, which share one shape.
type FeatureItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ProjectItem is a showcased project on the home page.
type ProjectItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// CapabilityItem is an illustrated capability tile.
type CapabilityItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon,omitempty"`
}

// StatItem is a single headline number.
type StatItem struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// ValueItem is a company-value card on the about page.
type ValueItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ProcessStep describes one stage of the turnkey delivery process.
type ProcessStep struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Details     []string `json:"details"`
	Icon        string   `json:"icon,omitempty"`
}

// CaseStudy is a delivered-project reference on the turnkey page.
type CaseStudy struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Tech        []string `json:"tech"`
}

// ContentSection is a generic builder section for pages assembled in the
// visual editor. Items and Settings stay free-form; the editor owns their
// shape.
type ContentSection struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Title       string           `json:"title,omitempty"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Text        string           `json:"text,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Items       []map[string]any `json:"items,omitempty"`
	Settings    map[string]any   `json:"settings,omitempty"`
}
