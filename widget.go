package twidge

import "fmt"

// Widgets are polymorphic over a small capability set. Composites probe
// capabilities with type assertions and treat absence as a defined no-op;
// plain values (e.g. strings) are valid leaf content.

// Dispatcher consumes one event and performs a mutation.
type Dispatcher interface {
	Dispatch(Event) error
}

// Renderable produces a frame-local display value on demand.
type Renderable interface {
	Render() string
}

// SizedRenderable renders within an available width and height. The display
// prefers this over Renderable when a widget implements it.
type SizedRenderable interface {
	RenderSize(width, height int) string
}

// Resulter exposes the widget's final value.
type Resulter interface {
	Result() any
}

// dispatchTo forwards an event to a widget if it is dispatchable. Widgets
// without the capability silently ignore the event.
func dispatchTo(w any, ev Event) error {
	if d, ok := w.(Dispatcher); ok {
		return d.Dispatch(ev)
	}
	return nil
}

// renderOf returns a widget's display value, falling back to its string
// form for plain content.
func renderOf(w any) string {
	switch v := w.(type) {
	case Renderable:
		return v.Render()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// renderSized renders with size if the widget supports it.
func renderSized(w any, width, height int) string {
	if v, ok := w.(SizedRenderable); ok {
		return v.RenderSize(width, height)
	}
	return renderOf(w)
}

// resultOf returns a widget's result, or the widget itself for plain
// content.
func resultOf(w any) any {
	if v, ok := w.(Resulter); ok {
		return v.Result()
	}
	return w
}
