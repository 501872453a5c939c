package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "monitor_history":
				return DefaultMonitorHistory
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "authorized_keys_path":
			return "~/.ssh/authorized_keys"
		case "server_host":
			return DefaultServerHost
		case "server_port":
			return DefaultServerPort
		default:
			return "example"
		}
	}

	return nil
}

// Set assigns value to the field whose json name is key, parsing it for the
// field's type
func (s *Settings) Set(key, value string) error {
	v := reflect.ValueOf(s).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		if strings.Split(t.Field(i).Tag.Get("json"), ",")[0] != key {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
			return nil
		case reflect.Ptr:
			switch field.Type().Elem().Kind() {
			case reflect.Bool:
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("%s expects a boolean, got %q", key, value)
				}
				field.Set(reflect.ValueOf(&b))
				return nil
			case reflect.Int:
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("%s expects an integer, got %q", key, value)
				}
				field.Set(reflect.ValueOf(&n))
				return nil
			}
		}
		return fmt.Errorf("%s cannot be set from the command line", key)
	}

	return fmt.Errorf("unknown setting %q", key)
}
