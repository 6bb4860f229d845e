package binplot

import (
	"fmt"
	"reflect"
)

// Columns extracts numeric columns from data. Two layouts are understood:
//
// "Slice of measurements" is a slice of structs; a column is either a
// field or a method without arguments:
//
//	type Measurement struct { Height, Weight float64; Age int }
//	func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
// "Collection of slices" is a struct of equal-length slices; a column is
// either a slice field or a method taking the index:
//
//	type Measurements struct { Height, Weight []float64 }
//	func (m Measurements) BMI(i int) float64 { ... }
//
// Int, uint and float kinds are converted to float64.
func Columns(data interface{}, fields ...string) ([][]float64, error) {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return somColumns(v, fields)
	case reflect.Struct:
		return cosColumns(v, fields)
	}
	return nil, fmt.Errorf("binplot: cannot extract columns from %T", data)
}

func somColumns(v reflect.Value, fields []string) ([][]float64, error) {
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("binplot: slice of %s is not a slice of measurements", t)
	}
	n := v.Len()
	cols := make([][]float64, len(fields))
	for c, name := range fields {
		var value func(i int) reflect.Value
		if f, ok := t.FieldByName(name); ok && f.PkgPath == "" {
			value = func(i int) reflect.Value { return v.Index(i).FieldByIndex(f.Index) }
		} else if m, ok := t.MethodByName(name); ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
			value = func(i int) reflect.Value { return m.Func.Call([]reflect.Value{v.Index(i)})[0] }
		} else {
			return nil, fmt.Errorf("binplot: %s has no field or method %s", t, name)
		}

		col := make([]float64, n)
		for i := 0; i < n; i++ {
			x, ok := toFloat(value(i))
			if !ok {
				return nil, fmt.Errorf("binplot: %s.%s is not numeric", t, name)
			}
			col[i] = x
		}
		cols[c] = col
	}
	return cols, nil
}

func cosColumns(v reflect.Value, fields []string) ([][]float64, error) {
	t := v.Type()
	cols := make([][]float64, len(fields))
	n := -1
	for c, name := range fields {
		var col []float64
		if f, ok := t.FieldByName(name); ok && f.PkgPath == "" {
			fv := v.FieldByIndex(f.Index)
			if fv.Kind() != reflect.Slice {
				return nil, fmt.Errorf("binplot: %s.%s is not a slice", t, name)
			}
			col = make([]float64, fv.Len())
			for i := range col {
				x, ok := toFloat(fv.Index(i))
				if !ok {
					return nil, fmt.Errorf("binplot: %s.%s is not numeric", t, name)
				}
				col[i] = x
			}
		} else if m, ok := t.MethodByName(name); ok && m.Type.NumIn() == 2 && m.Type.In(1).Kind() == reflect.Int {
			if n < 0 {
				return nil, fmt.Errorf("binplot: length of method column %s unknown, list a slice field first", name)
			}
			col = make([]float64, n)
			for i := range col {
				out := m.Func.Call([]reflect.Value{v, reflect.ValueOf(i)})
				x, ok := toFloat(out[0])
				if !ok {
					return nil, fmt.Errorf("binplot: %s.%s is not numeric", t, name)
				}
				col[i] = x
			}
		} else {
			return nil, fmt.Errorf("binplot: %s has no field or method %s", t, name)
		}

		if n >= 0 && len(col) != n {
			return nil, fmt.Errorf("binplot: column %s has %d values, want %d: %w", name, len(col), n, ErrShapeMismatch)
		}
		n = len(col)
		cols[c] = col
	}
	return cols, nil
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
