package tutorial

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"gopkg.in/yaml.v3"
)

// Catalog holds every tutorial found in a directory of yaml files.
type Catalog struct {
	dir       string
	lock      sync.RWMutex
	tutorials map[string]*Tutorial
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:       dir,
		tutorials: make(map[string]*Tutorial),
	}
}

func LoadCatalog(dir string) (*Catalog, error) {
	c := NewCatalog(dir)
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Dir() string {
	return c.dir
}

// Reload replaces the catalog content. A file that fails to parse is skipped
// and logged; a directory that cannot be read is an error.
func (c *Catalog) Reload() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	tutorials := make(map[string]*Tutorial)
	for _, entry := range entries {
		if entry.IsDir() || !isTutorialFile(entry.Name()) {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		t, err := parseFile(path)
		if err != nil {
			logs.Logger.Warn().Err(err).Str("file", path).Msg("skip tutorial")
			continue
		}
		if _, ok := tutorials[t.ID]; ok {
			logs.Logger.Warn().Str("id", t.ID).Str("file", path).Msg("duplicate tutorial id, skipped")
			continue
		}
		tutorials[t.ID] = t
	}
	c.lock.Lock()
	c.tutorials = tutorials
	c.lock.Unlock()
	logs.Logger.Info().Str("dir", c.dir).Int("count", len(tutorials)).Msg("tutorials loaded")
	return nil
}

func (c *Catalog) Put(t *Tutorial) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.tutorials[t.ID] = t
}

// Get returns a deep copy so callers may not mutate the catalog.
func (c *Catalog) Get(id string) (*Tutorial, bool) {
	c.lock.RLock()
	t, ok := c.tutorials[id]
	c.lock.RUnlock()
	if !ok {
		return nil, false
	}
	return deepCopy(t), true
}

func (c *Catalog) List() []*Tutorial {
	c.lock.RLock()
	ret := make([]*Tutorial, 0, len(c.tutorials))
	for _, t := range c.tutorials {
		ret = append(ret, deepCopy(t))
	}
	c.lock.RUnlock()
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}

func (c *Catalog) Step(id string, index int) (Step, bool) {
	t, ok := c.Get(id)
	if !ok {
		return Step{}, false
	}
	return t.Step(index)
}

func (c *Catalog) StepByNumber(id string, number int) (Step, bool) {
	t, ok := c.Get(id)
	if !ok {
		return Step{}, false
	}
	return t.StepByNumber(number)
}

func (c *Catalog) Titles(id string) []string {
	t, _ := c.Get(id)
	return t.Titles()
}

func (c *Catalog) Texts(id string) []string {
	t, _ := c.Get(id)
	return t.Texts()
}

// MediaPath resolves a step media reference against the catalog directory.
func (c *Catalog) MediaPath(ref string) string {
	if ref == "" || filepath.IsAbs(ref) || IsRemote(ref) {
		return ref
	}
	return filepath.Join(c.dir, ref)
}

func deepCopy(t *Tutorial) *Tutorial {
	ret := &Tutorial{}
	copier.CopyWithOption(ret, t, copier.Option{DeepCopy: true})
	return ret
}

func parseFile(path string) (*Tutorial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &Tutorial{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t.Title == "" {
		return nil, fmt.Errorf("tutorial %s has no title", t.ID)
	}
	for i := range t.Steps {
		if t.Steps[i].Number == 0 {
			t.Steps[i].Number = i + 1
		}
	}
	return t, nil
}

func isTutorialFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
