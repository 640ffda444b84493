package schemavalidator

import (
	"reflect"
	"strings"
)

// GetJSONTag retrieves the JSON tag for a given struct field.
// If the JSON tag is not found or is explicitly ignored, it falls back to the field name.
func GetJSONTag(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	return strings.Split(jsonTag, ",")[0]
}

// GetJSONFieldPath fetches the JSON field path for a given field in a
// struct, recursing into nested structs and non-nil struct pointers to
// build the dotted path.
func GetJSONFieldPath(structVal reflect.Value, structType reflect.Type, fieldName string) string {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := structVal.Field(i)

		if field.Name == fieldName {
			return GetJSONTag(field)
		}

		if field.Type.Kind() == reflect.Struct {
			nestedPath := GetJSONFieldPath(fieldValue, field.Type, fieldName)
			if nestedPath != "" {
				return GetJSONTag(field) + "." + nestedPath
			}
		}

		if field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if !fieldValue.IsNil() {
				dereferencedValue := fieldValue.Elem()
				nestedPath := GetJSONFieldPath(dereferencedValue, dereferencedValue.Type(), fieldName)
				if nestedPath != "" {
					return GetJSONTag(field) + "." + nestedPath
				}
			}
		}
	}

	return ""
}
