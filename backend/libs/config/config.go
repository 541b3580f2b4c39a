package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileEnv names the variable holding an optional YAML config path.
const FileEnv = "CONFIG_FILE"

var (
	errNilTarget = errors.New("config: target is nil")
	errNotStruct = errors.New("config: target must be pointer to struct")
)

var durationType = reflect.TypeOf(time.Duration(0))

// LoadConfig fills target from the YAML file named by CONFIG_FILE, if any,
// then applies environment overrides.
//
// A field is overridden by the variable named in its `env` tag, or by the
// upper-cased PARENT_CHILD path of field names when the tag is absent.
// `env:"-"` skips a field. Durations use time.ParseDuration syntax and
// string slices are comma separated.
func LoadConfig(target interface{}) error {
	return LoadConfigFrom(os.Getenv(FileEnv), target)
}

// LoadConfigFrom is LoadConfig with an explicit file path; an empty path skips the file.
func LoadConfigFrom(path string, target interface{}) error {
	return loader{lookup: os.LookupEnv}.load(path, target)
}

type loader struct {
	lookup func(key string) (string, bool)
}

func (l loader) load(path string, target interface{}) error {
	if target == nil {
		return errNilTarget
	}
	root := reflect.ValueOf(target)
	if root.Kind() != reflect.Ptr || root.IsNil() || root.Elem().Kind() != reflect.Struct {
		return errNotStruct
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("config: decode yaml %s: %w", path, err)
		}
	}

	return l.override(root.Elem(), "")
}

// override walks v depth-first and assigns every leaf that has an env value.
func (l loader) override(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf, fv := t.Field(i), v.Field(i)
		if !fv.CanSet() {
			continue
		}
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if err := l.override(fv, prefix); err != nil {
				return err
			}
			continue
		}

		key, skip := envKey(sf, prefix)
		if skip {
			continue
		}
		if fv.Kind() == reflect.Struct {
			if err := l.override(fv, key); err != nil {
				return err
			}
			continue
		}

		raw, ok := l.lookup(key)
		if !ok {
			continue
		}
		if err := set(fv, raw); err != nil {
			return fmt.Errorf("config: parse %s: %w", key, err)
		}
	}
	return nil
}

func envKey(sf reflect.StructField, prefix string) (string, bool) {
	tag := sf.Tag.Get("env")
	switch {
	case tag == "-":
		return "", true
	case tag != "":
		return upper(tag), false
	case prefix == "":
		return upper(sf.Name), false
	default:
		return prefix + "_" + upper(sf.Name), false
	}
}

func upper(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
}

func set(field reflect.Value, raw string) error {
	if field.Kind() == reflect.String {
		field.SetString(raw)
		return nil
	}
	if field.Type() == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	raw = strings.TrimSpace(raw)
	switch field.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		items := reflect.MakeSlice(field.Type(), 0, strings.Count(raw, ",")+1)
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = reflect.Append(items, reflect.ValueOf(item).Convert(field.Type().Elem()))
			}
		}
		field.Set(items)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// Address turns a configured port ("8080", ":8080" or "host:8080") into a
// listen address, using fallback when port is blank.
func Address(port, fallback string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = fallback
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
