package schema

import (
	"reflect"
)

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

// Values returns field values of a model in Columns order, ready to be
// used as SQL arguments.
func Values(model any) []any {
	v := reflect.Indirect(reflect.ValueOf(model))
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// Targets returns pointers to the fields of a model in Columns order,
// ready to be passed to Scan. The model must be a pointer.
func Targets(model any) []any {
	v := reflect.ValueOf(model).Elem()
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Addr().Interface())
		}
	}
	return res
}
