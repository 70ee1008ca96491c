package slides

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
)

// Extractor converts one top-level metaobject field into slides. path is the
// field's location in the response, used in MalformedContentError.
type Extractor func(field metaobject.Field, path string) ([]metaobject.Slide, error)

// Registry maps content-object field keys to extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor
}

// NewRegistry returns a registry that recognises the slider key.
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[string]Extractor{
			SliderKey: SliderExtractor,
		},
	}
}

// Register adds or replaces the extractor for key.
func (r *Registry) Register(key string, fn Extractor) error {
	if key == "" {
		return fmt.Errorf("extractor key cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("extractor for %q cannot be nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[key] = fn
	return nil
}

// Lookup returns the extractor registered for key.
func (r *Registry) Lookup(key string) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.extractors[key]
	return fn, ok
}

// Keys returns the recognised keys in lexical order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.extractors))
	for key := range r.extractors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Extract dispatches on the first top-level field whose key is registered.
// The result is never nil on success.
func (r *Registry) Extract(result *metaobject.QueryResult) ([]metaobject.Slide, error) {
	if result == nil || result.Metaobject == nil {
		return nil, malformed("metaobject")
	}
	if len(result.Metaobject.Fields) == 0 {
		return nil, malformed("metaobject.fields")
	}

	for i, field := range result.Metaobject.Fields {
		fn, ok := r.Lookup(field.Key)
		if !ok {
			continue
		}
		slides, err := fn(field, fmt.Sprintf("metaobject.fields[%d]", i))
		if err != nil {
			return nil, err
		}
		if slides == nil {
			slides = []metaobject.Slide{}
		}
		return slides, nil
	}

	return []metaobject.Slide{}, nil
}
