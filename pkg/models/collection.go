// Package models defines the core domain models of the atii site content store.
package models

import "encoding/json"

// Collection names one of the five top-level groups of site content. The enum
// value doubles as the key the remote snapshot service stores the collection
// under.
type Collection string

const (
	CollectionWebsites        Collection = "websites"
	CollectionTemplates       Collection = "templates"
	CollectionPages           Collection = "pages"
	CollectionSettings        Collection = "settings"
	CollectionWorkflowSchemas Collection = "workflowSchemas"
)

// ContainerKind describes the JSON container a collection serializes to.
type ContainerKind string

const (
	ContainerArray  ContainerKind = "array"
	ContainerObject ContainerKind = "object"
)

var cacheKeys = map[Collection]string{
	CollectionWebsites:        "atii_websites",
	CollectionTemplates:       "atii_templates",
	CollectionPages:           "atii_pages",
	CollectionSettings:        "atii_settings",
	CollectionWorkflowSchemas: "atii_workflow_schemas",
}

var containerKinds = map[Collection]ContainerKind{
	CollectionWebsites:        ContainerArray,
	CollectionTemplates:       ContainerArray,
	CollectionPages:           ContainerArray,
	CollectionSettings:        ContainerObject,
	CollectionWorkflowSchemas: ContainerObject,
}

// Collections returns all collections in a stable order.
func Collections() []Collection {
	return []Collection{
		CollectionWebsites,
		CollectionTemplates,
		CollectionPages,
		CollectionSettings,
		CollectionWorkflowSchemas,
	}
}

// CacheKey returns the stable key the collection is cached under. The keys
// match the localStorage namespace of the original admin panel and never
// change between releases.
func (c Collection) CacheKey() string {
	return cacheKeys[c]
}

// Kind returns the JSON container kind the collection's value must have.
func (c Collection) Kind() ContainerKind {
	return containerKinds[c]
}

// EmptyValue returns the serialized empty container for the collection.
func (c Collection) EmptyValue() json.RawMessage {
	if c.Kind() == ContainerObject {
		return json.RawMessage("{}")
	}

	return json.RawMessage("[]")
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	_, ok := cacheKeys[c]

	return ok
}

// CollectionByCacheKey resolves a cache key back to its collection.
func CollectionByCacheKey(key string) (Collection, bool) {
	for collection, cacheKey := range cacheKeys {
		if cacheKey == key {
			return collection, true
		}
	}

	return "", false
}

// CollectionByName resolves a remote snapshot key to its collection.
func CollectionByName(name string) (Collection, bool) {
	collection := Collection(name)

	return collection, collection.Valid()
}

// Snapshot is the consolidated payload exchanged with the remote snapshot
// service in one request. Fields stay raw because any subset may be absent or
// structurally invalid; callers decide per collection what to apply.
type Snapshot struct {
	Websites        json.RawMessage `json:"websites,omitempty"`
	Templates       json.RawMessage `json:"templates,omitempty"`
	Pages           json.RawMessage `json:"pages,omitempty"`
	Settings        json.RawMessage `json:"settings,omitempty"`
	WorkflowSchemas json.RawMessage `json:"workflowSchemas,omitempty"`
}

// Get returns the raw value stored for the collection, nil when absent.
func (s *Snapshot) Get(collection Collection) json.RawMessage {
	switch collection {
	case CollectionWebsites:
		return s.Websites
	case CollectionTemplates:
		return s.Templates
	case CollectionPages:
		return s.Pages
	case CollectionSettings:
		return s.Settings
	case CollectionWorkflowSchemas:
		return s.WorkflowSchemas
	}

	return nil
}

// Set stores the raw value for the collection.
func (s *Snapshot) Set(collection Collection, raw json.RawMessage) {
	switch collection {
	case CollectionWebsites:
		s.Websites = raw
	case CollectionTemplates:
		s.Templates = raw
	case CollectionPages:
		s.Pages = raw
	case CollectionSettings:
		s.Settings = raw
	case CollectionWorkflowSchemas:
		s.WorkflowSchemas = raw
	}
}
