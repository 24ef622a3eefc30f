package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/naxaras/gaemstone/ecs"
)

// ComponentInspector shows and edits the components of the selected entity.
// Stores hand out copies, so edits are made on a copy and written back
// through the store.
type ComponentInspector struct {
	selected ecs.Entity
	lastErr  error
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(u *ecs.Universe, selected ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ci.selected != selected {
		ci.lastErr = nil
	}
	ci.selected = selected

	if !u.Entities.IsAlive(ci.selected) {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", ci.selected))
	imgui.Separator()

	for _, compType := range u.Components.ComponentsOf(ci.selected.ID) {
		store, ok := u.Components.StoreFor(compType)
		if !ok {
			continue
		}
		component, ok := store.GetAny(ci.selected.ID)
		if !ok {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			if edited, changed := ci.renderComponent(component, compType); changed {
				if err := store.SetAny(ci.selected.ID, edited); err != nil {
					ci.lastErr = err
				}
			}
			imgui.TreePop()
		}
	}

	if ci.lastErr != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Last edit failed: %v", ci.lastErr))
	}

	imgui.End()
}

// renderComponent draws the component's fields and returns an edited copy
// when any widget changed.
func (ci *ComponentInspector) renderComponent(component any, compType reflect.Type) (any, bool) {
	copyVal := reflect.New(compType).Elem()
	copyVal.Set(reflect.ValueOf(component))

	if compType.Kind() != reflect.Struct {
		if edit, changed := ci.renderValue("value", copyVal); changed && applyEdit(copyVal, edit) {
			return copyVal.Interface(), true
		}
		return nil, false
	}

	changed := ci.renderStruct(copyVal)
	if !changed {
		return nil, false
	}
	return copyVal.Interface(), true
}

func (ci *ComponentInspector) renderStruct(val reflect.Value) bool {
	changed := false
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)

		switch {
		case field.IsPointer:
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
			} else {
				imgui.Text(fmt.Sprintf("%s: %v", field.Name, fieldVal.Elem().Interface()))
			}
		case field.IsStruct:
			if imgui.TreeNodeStr(field.Name) {
				if ci.renderStruct(fieldVal) {
					changed = true
				}
				imgui.TreePop()
			}
		case field.IsSlice:
			imgui.Text(fmt.Sprintf("%s: [%d items]", field.Name, fieldVal.Len()))
		case field.IsMap:
			imgui.Text(fmt.Sprintf("%s: map[%d items]", field.Name, fieldVal.Len()))
		case field.Editable:
			if edit, ok := ci.renderValue(field.Name, fieldVal); ok && applyEdit(fieldVal, edit) {
				changed = true
			}
		default:
			imgui.Text(fmt.Sprintf("%s: %v", field.Name, fieldVal.Interface()))
		}
	}
	return changed
}

// renderValue draws a widget for a scalar value and returns the new value
// when the user changed it.
func (ci *ComponentInspector) renderValue(name string, val reflect.Value) (any, bool) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			return int64(v), true
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			return uint64(v), true
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			return float64(v), true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			return v, true
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			return v, true
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
	return nil, false
}

// applyEdit stores edit into target, converting between widget value types
// and the target's kind. Values that overflow the target are rejected.
func applyEdit(target reflect.Value, edit any) bool {
	if !target.CanSet() {
		return false
	}

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, ok := edit.(int64)
		if !ok || target.OverflowInt(v) {
			return false
		}
		target.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, ok := edit.(uint64)
		if !ok || target.OverflowUint(v) {
			return false
		}
		target.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, ok := edit.(float64)
		if !ok || target.OverflowFloat(v) {
			return false
		}
		target.SetFloat(v)
	case reflect.Bool:
		v, ok := edit.(bool)
		if !ok {
			return false
		}
		target.SetBool(v)
	case reflect.String:
		v, ok := edit.(string)
		if !ok {
			return false
		}
		target.SetString(v)
	default:
		return false
	}
	return true
}
