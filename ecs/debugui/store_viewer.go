package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/naxaras/gaemstone/ecs"
)

type storeViewerCache struct {
	stores        []ecs.StoreStats
	sortColumn    int
	sortAscending bool
}

// StoreViewer lists component stores with their kind and occupancy.
type StoreViewer struct {
	cache    *storeViewerCache
	selected string
}

func NewStoreViewer() *StoreViewer {
	return &StoreViewer{
		cache: &storeViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
	}
}

// Render draws the store table and returns the component type name of the
// row clicked this frame, or "".
func (sv *StoreViewer) Render(u *ecs.Universe) string {
	if !imgui.BeginV("Store Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ""
	}

	sv.refresh(u.CollectStats())

	maxLen := 0
	for _, store := range sv.cache.stores {
		maxLen = max(maxLen, store.Len)
	}

	var clicked string
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StoreTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortStores()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, store := range sv.cache.stores {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(store.ComponentType, sv.selected == store.ComponentType, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selected = store.ComponentType
				clicked = store.ComponentType
			}

			imgui.TableNextColumn()
			imgui.Text(store.Kind)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", store.Len))

			if maxLen > 0 {
				barWidth := float32(store.Len) / float32(maxLen) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// Store counts change every frame, so the rows are replaced wholesale and
// only the sort order is kept.
func (sv *StoreViewer) refresh(stats ecs.UniverseStats) {
	sv.cache.stores = stats.StoreBreakdown
	sv.sortStores()
}

func (sv *StoreViewer) sortStores() {
	sort.SliceStable(sv.cache.stores, func(i, j int) bool {
		a, b := sv.cache.stores[i], sv.cache.stores[j]
		if !sv.cache.sortAscending {
			a, b = b, a
		}

		switch sv.cache.sortColumn {
		case 1:
			return a.Kind < b.Kind
		case 2:
			return a.Len < b.Len
		default:
			return a.ComponentType < b.ComponentType
		}
	})
}
