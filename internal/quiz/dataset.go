package quiz

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var topicData embed.FS

//go:embed topic.schema.json
var topicSchemaJSON []byte

const topicSchemaURL = "schema://capisco/topic.schema.json"

var (
	topicSchemaOnce sync.Once
	topicSchema     *jsonschema.Schema
	topicSchemaErr  error
)

// DatasetError reports a topic file that failed to parse or validate.
type DatasetError struct {
	Source string
	Err    error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("topic dataset %s: %v", e.Source, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// Catalog holds the topic datasets available to the quiz engine.
type Catalog struct {
	mu     sync.RWMutex
	topics map[string]*Dataset
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{topics: make(map[string]*Dataset)}
}

// LoadCatalog returns a catalog with the built-in topics.
func LoadCatalog() (*Catalog, error) {
	c := NewCatalog()
	if err := c.LoadFS(topicData, "data"); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFS adds every *.json file under dir in fsys.
func (c *Catalog) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read topic dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		ds, err := ParseDataset(name, data)
		if err != nil {
			return err
		}
		c.Add(ds)
	}
	return nil
}

// Add registers ds, replacing any dataset with the same topic.
func (c *Catalog) Add(ds *Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics[ds.Topic] = ds
}

// Topic returns the dataset for name.
func (c *Catalog) Topic(name string) (*Dataset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ds, ok := c.topics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, name)
	}
	return ds, nil
}

// Datasets returns all datasets sorted by Order, then by topic.
func (c *Catalog) Datasets() []*Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Dataset, 0, len(c.topics))
	for _, ds := range c.topics {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// Topics returns the topic keys in display order.
func (c *Catalog) Topics() []string {
	ds := c.Datasets()
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Topic
	}
	return out
}

// LoadDatasetFile reads and validates a user-supplied topic file.
func LoadDatasetFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topic file: %w", err)
	}
	return ParseDataset(path, data)
}

// ParseDataset validates data against the topic schema and decodes it.
func ParseDataset(source string, data []byte) (*Dataset, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &DatasetError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledTopicSchema()
	if err != nil {
		return nil, &DatasetError{Source: source, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &DatasetError{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &DatasetError{Source: source, Err: err}
	}
	ds.Topic = strings.ToLower(strings.TrimSpace(ds.Topic))
	if ds.Title == "" {
		ds.Title = ds.Topic
	}
	return &ds, nil
}

func compiledTopicSchema() (*jsonschema.Schema, error) {
	topicSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(topicSchemaJSON))
		if err != nil {
			topicSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(topicSchemaURL, doc); err != nil {
			topicSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		topicSchema, topicSchemaErr = c.Compile(topicSchemaURL)
	})
	return topicSchema, topicSchemaErr
}
