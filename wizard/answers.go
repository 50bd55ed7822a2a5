package wizard

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Answers maps step names to resolved values, in the order the steps were
// answered. Entries are only ever appended.
type Answers struct {
	names  []string
	values map[string]any
}

func NewAnswers() *Answers {
	return &Answers{values: make(map[string]any)}
}

func (it *Answers) add(name string, value any) {
	if _, ok := it.values[name]; ok {
		panic(fmt.Sprintf("answer %q recorded twice", name))
	}
	it.names = append(it.names, name)
	it.values[name] = value
}

func (it *Answers) Len() int {
	return len(it.names)
}

func (it *Answers) Names() []string {
	result := make([]string, len(it.names))
	copy(result, it.names)
	return result
}

func (it *Answers) Get(name string) (any, bool) {
	value, ok := it.values[name]
	return value, ok
}

// String returns the answer printed as text, or "" when missing.
func (it *Answers) String(name string) string {
	value, ok := it.values[name]
	if !ok {
		return ""
	}
	return fmt.Sprint(value)
}

func (it *Answers) Bool(name string) bool {
	value, _ := it.values[name].(bool)
	return value
}

// Map returns a copy of the answers.
func (it *Answers) Map() map[string]any {
	result := make(map[string]any, len(it.values))
	for key, value := range it.values {
		result[key] = value
	}
	return result
}

// MarshalYAML keeps answer order in the document.
func (it *Answers) MarshalYAML() (interface{}, error) {
	result := make(yaml.MapSlice, 0, len(it.names))
	for _, name := range it.names {
		result = append(result, yaml.MapItem{Key: name, Value: it.values[name]})
	}
	return result, nil
}
