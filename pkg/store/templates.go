package store

import (
	"context"
	"maps"
	"slices"

	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/google/uuid"
)

// TemplatePatch is a partial update of a Template. Nil fields are left as is.
// Workflow replaces the whole step list; steps are never merged one by one.
type TemplatePatch struct {
	Title        *string                `json:"title,omitempty"`
	Description  *string                `json:"description,omitempty"`
	Customizable *[]string              `json:"customizable,omitempty"`
	Workflow     *[]models.WorkflowStep `json:"workflow,omitempty"`
	Status       *models.TemplateStatus `json:"status,omitempty"`
}

// AddTemplate stores a new template and returns it with its generated id.
// Workflow steps are normalized into position order.
func (s *Store) AddTemplate(ctx context.Context, template models.Template) models.Template {
	template.ID = uuid.New().String()
	template.Workflow = slices.Clone(template.Workflow)
	models.SortSteps(template.Workflow)

	s.mu.Lock()
	s.templates = append(s.templates, template)
	value := slices.Clone(s.templates)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionTemplates, value)

	return template
}

// UpdateTemplate applies a partial update. Unknown ids are a silent no-op.
func (s *Store) UpdateTemplate(ctx context.Context, id string, patch TemplatePatch) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.templates, func(t models.Template) bool { return t.ID == id })
	if idx < 0 {
		s.mu.Unlock()

		return
	}

	template := &s.templates[idx]

	if patch.Title != nil {
		template.Title = *patch.Title
	}

	if patch.Description != nil {
		template.Description = *patch.Description
	}

	if patch.Customizable != nil {
		template.Customizable = slices.Clone(*patch.Customizable)
	}

	if patch.Workflow != nil {
		template.Workflow = slices.Clone(*patch.Workflow)
		models.SortSteps(template.Workflow)
	}

	if patch.Status != nil {
		template.Status = *patch.Status
	}

	value := slices.Clone(s.templates)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionTemplates, value)
}

// DeleteTemplate removes a template and, as a cascading side effect, the
// workflow schema saved under its id. Unknown ids are a silent no-op.
func (s *Store) DeleteTemplate(ctx context.Context, id string) {
	s.mu.Lock()

	remaining := slices.DeleteFunc(slices.Clone(s.templates), func(t models.Template) bool { return t.ID == id })
	if len(remaining) == len(s.templates) {
		s.mu.Unlock()

		return
	}

	s.templates = remaining
	templatesValue := slices.Clone(s.templates)

	_, hadSchema := s.schemas[id]
	if hadSchema {
		delete(s.schemas, id)
	}

	schemasValue := maps.Clone(s.schemas)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionTemplates, templatesValue)

	if hadSchema {
		s.emit(ctx, models.CollectionWorkflowSchemas, schemasValue)
	}
}

// DuplicateTemplate clones a template under a new id with the copy marker
// appended to its title. Nested workflow steps get fresh ids so the clone
// renders without key collisions. Unknown ids are a silent no-op.
func (s *Store) DuplicateTemplate(ctx context.Context, id string) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.templates, func(t models.Template) bool { return t.ID == id })
	if idx < 0 {
		s.mu.Unlock()

		return
	}

	duplicated := s.templates[idx]
	duplicated.ID = uuid.New().String()
	duplicated.Title += duplicateSuffix
	duplicated.Customizable = slices.Clone(duplicated.Customizable)

	steps := slices.Clone(duplicated.Workflow)
	for i := range steps {
		steps[i].ID = uuid.New().String()
	}

	duplicated.Workflow = steps

	s.templates = append(s.templates, duplicated)
	value := slices.Clone(s.templates)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionTemplates, value)
}

// AddWorkflowStep appends a step to a template's workflow on the main line,
// one sequence past the highest in use, and returns it with its generated id.
// Unknown template ids are a silent no-op returning the zero step.
func (s *Store) AddWorkflowStep(ctx context.Context, templateID string, step models.WorkflowStep) models.WorkflowStep {
	s.mu.Lock()

	idx := slices.IndexFunc(s.templates, func(t models.Template) bool { return t.ID == templateID })
	if idx < 0 {
		s.mu.Unlock()

		return models.WorkflowStep{}
	}

	template := &s.templates[idx]

	step.ID = uuid.New().String()
	step.Position = models.StepPosition{Sequence: models.NextSequence(template.Workflow)}

	template.Workflow = append(slices.Clone(template.Workflow), step)

	value := slices.Clone(s.templates)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionTemplates, value)

	return step
}

// SaveWorkflowSchema stores the visual schema nodes for a template,
// replacing any previous value wholesale.
func (s *Store) SaveWorkflowSchema(ctx context.Context, templateID string, nodes []models.SchemaNode) {
	s.mu.Lock()
	s.schemas[templateID] = slices.Clone(nodes)
	value := maps.Clone(s.schemas)
	s.mu.Unlock()

	s.emit(ctx, models.CollectionWorkflowSchemas, value)
}

// WorkflowSchema returns the schema nodes saved for a template, or an empty
// list when none exist.
func (s *Store) WorkflowSchema(templateID string) []models.SchemaNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes, ok := s.schemas[templateID]
	if !ok {
		return []models.SchemaNode{}
	}

	return slices.Clone(nodes)
}
