package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// lookupFunc matches os.LookupEnv
type lookupFunc func(key string) (string, bool)

// applyEnv overrides every field carrying an env tag, descending into the
// nested section structs, with the value returned by lookup
func applyEnv(target interface{}, lookup lookupFunc) error {
	v := reflect.Indirect(reflect.ValueOf(target))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a struct, got %s", v.Kind())
	}
	return applyEnvValue(v, lookup)
}

func applyEnvValue(section reflect.Value, lookup lookupFunc) error {
	for _, sf := range reflect.VisibleFields(section.Type()) {
		field := section.FieldByIndex(sf.Index)

		if sf.Type.Kind() == reflect.Struct {
			if err := applyEnvValue(field, lookup); err != nil {
				return err
			}
			continue
		}

		key, ok := sf.Tag.Lookup("env")
		if !ok {
			continue
		}
		raw, set := lookup(key)
		if !set {
			continue
		}

		if err := assign(field, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// assign parses raw into the field's kind. Empty values leave numeric and
// boolean fields untouched.
func assign(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		if raw == "" {
			return nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}
	return nil
}

// processEnv applies the process environment
func processEnv(config *Config) error {
	return applyEnv(config, os.LookupEnv)
}
