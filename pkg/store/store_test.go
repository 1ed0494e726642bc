package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/KoboSteruS/atii/pkg/broadcast"
	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string]json.RawMessage)}
}

func (c *memCache) Read(_ context.Context, key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.values[key]
	if !ok || !json.Valid(value) {
		return nil, false
	}

	return value, true
}

func (c *memCache) Write(_ context.Context, key string, value json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value

	return nil
}

func (c *memCache) HealthCheck(_ context.Context) error { return nil }
func (c *memCache) Close(_ context.Context) error       { return nil }

func (c *memCache) get(key string) json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values[key]
}

// recordingBus records published change events.
type recordingBus struct {
	mu     sync.Mutex
	events []broadcast.ChangeEvent
}

func (b *recordingBus) Publish(_ context.Context, event broadcast.ChangeEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, event)

	return nil
}

func (b *recordingBus) Subscribe(_ context.Context, _ broadcast.Handler) error { return nil }
func (b *recordingBus) Close() error                                          { return nil }

func (b *recordingBus) published() []broadcast.ChangeEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]broadcast.ChangeEvent(nil), b.events...)
}

// recordingPusher records remote pushes.
type recordingPusher struct {
	mu     sync.Mutex
	pushed []models.Collection
	err    error
}

func (p *recordingPusher) Push(_ context.Context, collection models.Collection, _ json.RawMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pushed = append(p.pushed, collection)

	return p.err
}

func (p *recordingPusher) collections() []models.Collection {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.Collection(nil), p.pushed...)
}

func newTestStore(t *testing.T) (*Store, *memCache, *recordingBus, *recordingPusher) {
	t.Helper()

	cache := newMemCache()
	bus := &recordingBus{}
	pusher := &recordingPusher{}

	return New(cache, bus, pusher, slog.Default()), cache, bus, pusher
}

func TestStore_LoadKeepsDefaultsOnEmptyCache(t *testing.T) {
	store, _, _, _ := newTestStore(t)
	store.Load(context.Background())

	assert.Equal(t, models.DefaultWebsites(), store.Websites())
	assert.Equal(t, models.DefaultSettings(), store.Settings())
}

func TestStore_LoadPrefersCachedData(t *testing.T) {
	ctx := context.Background()
	store, cache, _, _ := newTestStore(t)

	cached := []models.Website{{ID: "w1", Name: "Кастомный сайт"}}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, cache.Write(ctx, models.CollectionWebsites.CacheKey(), raw))

	store.Load(ctx)

	assert.Equal(t, cached, store.Websites())
	// Collections without cached data keep their defaults.
	assert.Equal(t, models.DefaultTemplates(), store.Templates())
}

func TestStore_LoadIgnoresMalformedCacheEntry(t *testing.T) {
	ctx := context.Background()
	store, cache, _, _ := newTestStore(t)

	cache.mu.Lock()
	cache.values[models.CollectionTemplates.CacheKey()] = json.RawMessage(`{not json`)
	cache.mu.Unlock()

	store.Load(ctx)

	assert.Equal(t, models.DefaultTemplates(), store.Templates())
}

func TestStore_LoadIgnoresWrongShapeCacheEntry(t *testing.T) {
	ctx := context.Background()
	store, cache, _, _ := newTestStore(t)

	// Valid JSON, wrong container kind.
	require.NoError(t, cache.Write(ctx, models.CollectionWebsites.CacheKey(), json.RawMessage(`{"id":"1"}`)))

	store.Load(ctx)

	assert.Equal(t, models.DefaultWebsites(), store.Websites())
}

func TestStore_AddWebsiteEmitsEverywhere(t *testing.T) {
	ctx := context.Background()
	store, cache, bus, pusher := newTestStore(t)
	store.Load(ctx)

	created := store.AddWebsite(ctx, models.Website{Name: "Новый сайт"})
	store.Flush()

	require.NotEmpty(t, created.ID)

	// Cache mirrors the full collection.
	var cached []models.Website
	require.NoError(t, json.Unmarshal(cache.get(models.CollectionWebsites.CacheKey()), &cached))
	assert.Equal(t, store.Websites(), cached)

	// Peers are notified with the serialized replacement value.
	events := bus.published()
	require.Len(t, events, 1)
	assert.Equal(t, models.CollectionWebsites.CacheKey(), events[0].Key)
	assert.JSONEq(t, string(cache.get(models.CollectionWebsites.CacheKey())), events[0].NewValue)

	// The remote service got the same collection.
	assert.Equal(t, []models.Collection{models.CollectionWebsites}, pusher.collections())
}

func TestStore_UpdateWebsitePatchesFields(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	id := store.Websites()[0].ID
	before := store.Websites()[0]

	name := "Переименованный"
	featured := !before.Featured

	store.UpdateWebsite(ctx, id, WebsitePatch{Name: &name, Featured: &featured})

	after := store.Websites()[0]
	assert.Equal(t, name, after.Name)
	assert.Equal(t, featured, after.Featured)
	assert.Equal(t, before.Client, after.Client)
	assert.Equal(t, before.URL, after.URL)
}

func TestStore_UpdateWebsiteUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, _, bus, pusher := newTestStore(t)
	store.Load(ctx)

	name := "ignored"
	store.UpdateWebsite(ctx, "no-such-id", WebsitePatch{Name: &name})
	store.Flush()

	assert.Equal(t, models.DefaultWebsites(), store.Websites())
	assert.Empty(t, bus.published())
	assert.Empty(t, pusher.collections())
}

func TestStore_DeleteWebsite(t *testing.T) {
	ctx := context.Background()
	store, cache, _, _ := newTestStore(t)
	store.Load(ctx)

	websites := store.Websites()
	store.DeleteWebsite(ctx, websites[0].ID)

	assert.Len(t, store.Websites(), len(websites)-1)

	var cached []models.Website
	require.NoError(t, json.Unmarshal(cache.get(models.CollectionWebsites.CacheKey()), &cached))
	assert.Equal(t, store.Websites(), cached)

	// Deleting again changes nothing.
	store.DeleteWebsite(ctx, websites[0].ID)
	assert.Len(t, store.Websites(), len(websites)-1)
}

func TestStore_DuplicateWebsiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	original := store.Websites()[0]
	store.DuplicateWebsite(ctx, original.ID)

	websites := store.Websites()
	duplicated := websites[len(websites)-1]

	assert.NotEqual(t, original.ID, duplicated.ID)
	assert.Equal(t, original.Name+" (копия)", duplicated.Name)

	// Everything except id and name survives the clone.
	duplicated.ID = original.ID
	duplicated.Name = original.Name
	assert.Equal(t, original, duplicated)
}

func TestStore_DuplicateTemplateRegeneratesStepIDs(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	original := store.Templates()[0]
	store.DuplicateTemplate(ctx, original.ID)

	templates := store.Templates()
	duplicated := templates[len(templates)-1]

	assert.Equal(t, original.Title+" (копия)", duplicated.Title)
	require.Len(t, duplicated.Workflow, len(original.Workflow))

	for i := range duplicated.Workflow {
		assert.NotEqual(t, original.Workflow[i].ID, duplicated.Workflow[i].ID)
		assert.Equal(t, original.Workflow[i].Position, duplicated.Workflow[i].Position)
		assert.Equal(t, original.Workflow[i].Label, duplicated.Workflow[i].Label)
	}
}

func TestStore_DeleteTemplateCascadesSchema(t *testing.T) {
	ctx := context.Background()
	store, _, bus, _ := newTestStore(t)
	store.Load(ctx)

	id := store.Templates()[0].ID
	store.SaveWorkflowSchema(ctx, id, []models.SchemaNode{{"id": "n1", "type": "trigger"}})

	require.Contains(t, store.WorkflowSchemas(), id)

	store.DeleteTemplate(ctx, id)

	assert.NotContains(t, store.WorkflowSchemas(), id)

	// Both collections were broadcast: schema save, template delete, schema cascade.
	keys := make([]string, 0)
	for _, event := range bus.published() {
		keys = append(keys, event.Key)
	}

	assert.Equal(t, []string{
		models.CollectionWorkflowSchemas.CacheKey(),
		models.CollectionTemplates.CacheKey(),
		models.CollectionWorkflowSchemas.CacheKey(),
	}, keys)
}

func TestStore_DeleteTemplateWithoutSchemaEmitsTemplatesOnly(t *testing.T) {
	ctx := context.Background()
	store, _, bus, _ := newTestStore(t)
	store.Load(ctx)

	store.DeleteTemplate(ctx, store.Templates()[0].ID)

	events := bus.published()
	require.Len(t, events, 1)
	assert.Equal(t, models.CollectionTemplates.CacheKey(), events[0].Key)
}

func TestStore_AddWorkflowStepAssignsNextSequence(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	template := store.Templates()[0]
	highest := 0

	for _, step := range template.Workflow {
		if step.Position.Sequence > highest {
			highest = step.Position.Sequence
		}
	}

	created := store.AddWorkflowStep(ctx, template.ID, models.WorkflowStep{
		Label: "Новый шаг",
		Type:  models.StepTypeProcess,
	})

	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.StepPosition{Sequence: highest + 1}, created.Position)

	workflow := store.Templates()[0].Workflow
	assert.Equal(t, created.ID, workflow[len(workflow)-1].ID)

	// Unknown template ids change nothing.
	missing := store.AddWorkflowStep(ctx, "no-such-template", models.WorkflowStep{Label: "x"})
	assert.Empty(t, missing.ID)
}

func TestStore_UpdateTemplateSortsWorkflow(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	id := store.Templates()[0].ID
	workflow := []models.WorkflowStep{
		{ID: "s3", Label: "Третий", Type: models.StepTypeComplete, Position: models.StepPosition{Sequence: 3}},
		{ID: "s1", Label: "Первый", Type: models.StepTypeTrigger, Position: models.StepPosition{Sequence: 1}},
		{ID: "s2-down", Label: "Ветка", Type: models.StepTypeProcess, Position: models.StepPosition{Sequence: 2, Branch: models.BranchDown}},
		{ID: "s2", Label: "Второй", Type: models.StepTypeProcess, Position: models.StepPosition{Sequence: 2}},
	}

	store.UpdateTemplate(ctx, id, TemplatePatch{Workflow: &workflow})

	stored := store.Templates()[0].Workflow
	ids := make([]string, 0, len(stored))

	for _, step := range stored {
		ids = append(ids, step.ID)
	}

	assert.Equal(t, []string{"s1", "s2", "s2-down", "s3"}, ids)
}

func TestStore_WorkflowSchemaMissingReturnsEmpty(t *testing.T) {
	store, _, _, _ := newTestStore(t)
	store.Load(context.Background())

	assert.Empty(t, store.WorkflowSchema("no-such-template"))
	assert.NotNil(t, store.WorkflowSchema("no-such-template"))
}

func TestStore_UpdatePageStampsUpdated(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	id := store.Pages()[0].ID
	name := "Новое имя"

	store.UpdatePage(ctx, id, PagePatch{Name: &name})

	page := store.Pages()[0]
	assert.Equal(t, name, page.Name)
	assert.Equal(t, "только что", page.Updated)
}

func TestStore_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	before := store.Settings()
	domain := "example.ru"

	store.UpdateSettings(ctx, SettingsPatch{Domain: &domain})

	after := store.Settings()
	assert.Equal(t, domain, after.Domain)
	assert.Equal(t, before.SiteName, after.SiteName)
	assert.Equal(t, before.PrimaryColor, after.PrimaryColor)
}

func TestStore_ApplyRemoteSkipsBroadcastAndPush(t *testing.T) {
	ctx := WithOrigin(context.Background(), OriginRemote)
	store, cache, bus, pusher := newTestStore(t)
	store.Load(ctx)

	raw := json.RawMessage(`[{"id":"r1","name":"С сервера"}]`)
	require.NoError(t, store.Apply(ctx, models.CollectionWebsites, raw))
	store.Flush()

	require.Len(t, store.Websites(), 1)
	assert.Equal(t, "r1", store.Websites()[0].ID)

	// The cache still tracks the new state.
	var cached []models.Website
	require.NoError(t, json.Unmarshal(cache.get(models.CollectionWebsites.CacheKey()), &cached))
	assert.Equal(t, store.Websites(), cached)

	// But nothing echoes back out.
	assert.Empty(t, bus.published())
	assert.Empty(t, pusher.collections())
}

func TestStore_ApplyIsIdempotent(t *testing.T) {
	ctx := WithOrigin(context.Background(), OriginRemote)
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	raw := json.RawMessage(`[{"id":"r1","name":"С сервера"}]`)
	require.NoError(t, store.Apply(ctx, models.CollectionWebsites, raw))

	first := store.Websites()

	require.NoError(t, store.Apply(ctx, models.CollectionWebsites, raw))
	assert.Equal(t, first, store.Websites())
}

func TestStore_ApplyMalformedLeavesStateUntouched(t *testing.T) {
	ctx := WithOrigin(context.Background(), OriginRemote)
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	before := store.Websites()

	err := store.Apply(ctx, models.CollectionWebsites, json.RawMessage(`"not-an-array"`))
	require.Error(t, err)
	assert.Equal(t, before, store.Websites())
}

func TestStore_ApplyUnknownCollection(t *testing.T) {
	store, _, _, _ := newTestStore(t)

	err := store.Apply(context.Background(), models.Collection("bogus"), json.RawMessage(`[]`))
	assert.Error(t, err)
}

func TestStore_HandleChangeAppliesWithoutEcho(t *testing.T) {
	ctx := context.Background()
	store, cache, bus, pusher := newTestStore(t)
	store.Load(ctx)

	event := broadcast.ChangeEvent{
		Key:      models.CollectionSettings.CacheKey(),
		NewValue: `{"siteName":"Из соседней вкладки"}`,
	}

	require.NoError(t, store.HandleChange(ctx, event))
	store.Flush()

	assert.Equal(t, "Из соседней вкладки", store.Settings().SiteName)
	assert.JSONEq(t, event.NewValue, string(cache.get(models.CollectionSettings.CacheKey())))

	// A peer-applied change must never rebroadcast or push: that is the loop.
	assert.Empty(t, bus.published())
	assert.Empty(t, pusher.collections())
}

func TestStore_HandleChangeRejectsNullSchemaMap(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	id := store.Templates()[0].ID
	store.SaveWorkflowSchema(ctx, id, []models.SchemaNode{{"id": "n1"}})

	// "null" is well-formed JSON; applying it would nil the schema map and
	// panic the next save.
	err := store.HandleChange(ctx, broadcast.ChangeEvent{
		Key:      models.CollectionWorkflowSchemas.CacheKey(),
		NewValue: `null`,
	})

	assert.NoError(t, err)
	assert.Contains(t, store.WorkflowSchemas(), id)

	assert.NotPanics(t, func() {
		store.SaveWorkflowSchema(ctx, id, []models.SchemaNode{{"id": "n2"}})
	})
}

func TestStore_ApplyRejectsWrongContainerKind(t *testing.T) {
	ctx := WithOrigin(context.Background(), OriginRemote)
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	before := store.Settings()

	for _, raw := range []string{`null`, `"scalar"`, `42`, `[1,2]`} {
		err := store.Apply(ctx, models.CollectionSettings, json.RawMessage(raw))
		require.Error(t, err, "payload %s must be rejected", raw)
	}

	assert.Equal(t, before, store.Settings())
}

func TestStore_HandleChangeIgnoresUnknownKey(t *testing.T) {
	store, _, _, _ := newTestStore(t)
	store.Load(context.Background())

	err := store.HandleChange(context.Background(), broadcast.ChangeEvent{Key: "other_app_key", NewValue: "[]"})
	assert.NoError(t, err)
}

func TestStore_HandleChangeSwallowsMalformedValue(t *testing.T) {
	ctx := context.Background()
	store, _, _, _ := newTestStore(t)
	store.Load(ctx)

	before := store.Templates()

	err := store.HandleChange(ctx, broadcast.ChangeEvent{
		Key:      models.CollectionTemplates.CacheKey(),
		NewValue: `{broken`,
	})

	assert.NoError(t, err)
	assert.Equal(t, before, store.Templates())
}

func TestStore_PushFailureDoesNotAffectLocalState(t *testing.T) {
	ctx := context.Background()
	store, cache, _, pusher := newTestStore(t)
	store.Load(ctx)

	pusher.err = assert.AnError

	created := store.AddWebsite(ctx, models.Website{Name: "Локальный"})
	store.Flush()

	// Local state and cache keep the mutation even though the push failed.
	websites := store.Websites()
	assert.Equal(t, created.ID, websites[len(websites)-1].ID)

	var cached []models.Website
	require.NoError(t, json.Unmarshal(cache.get(models.CollectionWebsites.CacheKey()), &cached))
	assert.Equal(t, websites, cached)
}

func TestStore_NilBusAndPusher(t *testing.T) {
	ctx := context.Background()
	store := New(newMemCache(), nil, nil, slog.Default())
	store.Load(ctx)

	// Mutations work without any synchronization wired in.
	created := store.AddWebsite(ctx, models.Website{Name: "Одиночный режим"})
	store.Flush()

	assert.NotEmpty(t, created.ID)
}
