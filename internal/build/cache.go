package build

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Output directory layout:
//
//	outDir/
//	  .cache.json          # build cache: maps triple -> buildEntry
//	  libgnark.a|.so       # built or copied artifact
//	  libgnark.h           # generated header
//	  cc_wrapper_<sdk>.sh  # synthesized compiler wrappers, one per SDK
const cacheFile = ".cache.json"

// buildEntry contains metadata about a single successful compile.
type buildEntry struct {
	Artifact  string    `json:"artifact"`
	BuildTime time.Time `json:"build_time"`
}

// buildCache maps target triples to their build entries.
type buildCache struct {
	Cache map[string]*buildEntry `json:"cache"`
}

func (c *buildCache) get(triple string) (*buildEntry, bool) {
	entry, ok := c.Cache[triple]
	return entry, ok
}

func (c *buildCache) set(triple string, entry *buildEntry) {
	if c.Cache == nil {
		c.Cache = make(map[string]*buildEntry)
	}
	c.Cache[triple] = entry
}

// loadCache reads the cache file at path.
func loadCache(path string) (*buildCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cache buildCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

// saveCache writes the cache file to path.
func saveCache(path string, cache *buildCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// newestMtime returns the most recent modification time of any regular
// file under dir.
func newestMtime(dir string) (time.Time, error) {
	var newest time.Time
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return newest, err
}
