package twidge

import "testing"

func TestEditDict(t *testing.T) {
	t.Run("FillFields", func(t *testing.T) {
		d := NewEditDict([]string{"name", "city"})
		typeText(t, d, "ada")
		d.Dispatch(Key("tab"))
		typeText(t, d, "london")

		got := d.Values()
		if got["name"] != "ada" || got["city"] != "london" {
			t.Errorf("Values() = %v", got)
		}
	})

	t.Run("InitialValues", func(t *testing.T) {
		d := NewEditDictValues([]string{"a", "b"}, map[string]string{"b": "x"})
		got := d.Values()
		if got["a"] != "" || got["b"] != "x" {
			t.Errorf("Values() = %v", got)
		}
	})

	t.Run("TabWrapsAround", func(t *testing.T) {
		d := NewEditDict([]string{"a", "b"})
		d.Dispatch(Key("tab"))
		d.Dispatch(Key("tab"))
		typeText(t, d, "first")
		if d.Values()["a"] != "first" {
			t.Errorf("Values() = %v", d.Values())
		}
	})

	t.Run("ShiftTabGoesBack", func(t *testing.T) {
		d := NewEditDict([]string{"a", "b", "c"})
		d.Dispatch(Key("shift+tab"))
		typeText(t, d, "last")
		if d.Values()["c"] != "last" {
			t.Errorf("Values() = %v", d.Values())
		}
	})

	t.Run("EmptyPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for empty key list")
			}
		}()
		NewEditDict(nil)
	})

	t.Run("ResultIsMap", func(t *testing.T) {
		d := NewEditDict([]string{"k"})
		if _, ok := d.Result().(map[string]string); !ok {
			t.Errorf("Result() = %T", d.Result())
		}
	})
}
