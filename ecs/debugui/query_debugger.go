package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/naxaras/gaemstone/ecs"
)

type queryDebuggerCache struct {
	types          map[string]reflect.Type
	componentTypes []string
	lastStoreCount int
}

// QueryDebugger counts the entities matching a hand-picked set of
// component types.
type QueryDebugger struct {
	selectedComponentTypes map[string]bool
	cache                  *queryDebuggerCache
}

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{
		selectedComponentTypes: make(map[string]bool),
		cache: &queryDebuggerCache{
			lastStoreCount: -1,
		},
	}
}

func (qd *QueryDebugger) Render(u *ecs.Universe) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.rebuildCacheIfNeeded(u)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range qd.cache.componentTypes {
		selected := qd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				qd.selectedComponentTypes[compType] = true
			} else {
				delete(qd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	selectedTypes := qd.selectedTypes()
	if len(selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matches := qd.matchingEntities(u, selectedTypes)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Entities") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("QueryEntityTable", 2, tableFlags, imgui.NewVec2(0, 200), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("Generation")
			imgui.TableHeadersRow()

			for _, e := range matches {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", e.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", e.Generation))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (qd *QueryDebugger) rebuildCacheIfNeeded(u *ecs.Universe) {
	if current := u.Components.Len(); qd.cache.lastStoreCount != current {
		qd.cache.componentTypes = nil
		qd.cache.lastStoreCount = current
	}

	if qd.cache.componentTypes == nil {
		qd.rebuildCache(u)
	}
}

func (qd *QueryDebugger) rebuildCache(u *ecs.Universe) {
	qd.cache.types = make(map[string]reflect.Type)
	for store := range u.Components.Stores() {
		t := store.ComponentType()
		qd.cache.types[t.String()] = t
	}

	qd.cache.componentTypes = make([]string, 0, len(qd.cache.types))
	for typeName := range qd.cache.types {
		qd.cache.componentTypes = append(qd.cache.componentTypes, typeName)
	}

	sort.Strings(qd.cache.componentTypes)
}

// selectedTypes resolves the checked names, skipping any whose store is gone.
func (qd *QueryDebugger) selectedTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(qd.selectedComponentTypes))
	for typeName := range qd.selectedComponentTypes {
		if t, ok := qd.cache.types[typeName]; ok {
			types = append(types, t)
		}
	}
	return types
}

func (qd *QueryDebugger) matchingEntities(u *ecs.Universe, types []reflect.Type) []ecs.Entity {
	var matches []ecs.Entity
	for e := range u.Match(types...) {
		matches = append(matches, e)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches
}
