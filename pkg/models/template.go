package models

// StepType classifies a workflow step for rendering and filtering.
type StepType string

const (
	StepTypeTrigger      StepType = "trigger"
	StepTypeProcess      StepType = "process"
	StepTypeAPI          StepType = "api"
	StepTypeNotification StepType = "notification"
	StepTypeComplete     StepType = "complete"
)

// WorkflowStep is one node of a template's automation workflow. Steps carry no
// prev/next links; their order is defined entirely by Position.
type WorkflowStep struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"                 validate:"required"`
	Type        StepType     `json:"type"                  validate:"required,oneof=trigger process api notification complete"`
	Description string       `json:"description,omitempty"`
	Position    StepPosition `json:"position"`
}

// TemplateStatus represents the lifecycle state of a template.
type TemplateStatus string

const (
	TemplateStatusActive   TemplateStatus = "active"
	TemplateStatusInactive TemplateStatus = "inactive"
)

// Template is a ready-made automation offering listed on the site. Workflow is
// edited by a dedicated sub-editor in the admin panel.
type Template struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"        validate:"required"`
	Description  string         `json:"description"`
	Customizable []string       `json:"customizable"`
	Workflow     []WorkflowStep `json:"workflow"     validate:"dive"`
	Status       TemplateStatus `json:"status"       validate:"required,oneof=active inactive"`
}

// SchemaNode is one visual node of a workflow schema as drawn by the schema
// editor. The shape is free-form and owned by the editor.
type SchemaNode map[string]any
