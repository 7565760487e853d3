package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/pkg/ecmaparser"
)

// cacheSchemaVersion is bumped whenever CachedDiagnostic/CachedResult's
// shape changes, invalidating every payload written under an older schema.
const cacheSchemaVersion uint16 = 1

// DiskCache persists per-file parse results on disk, keyed by the SHA-256
// of the file's content, so a repeated CLI invocation over an unchanged
// file in a large project skips re-parsing it entirely. The payload is
// limited to the diagnostic list and finalization flags — a hit never
// reconstructs a tree. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is the msgpack-serializable shape of a diag.Diagnostic,
// stripped of its Fixes (which carry thunks that cannot survive
// serialization) since a cache hit is only ever used for repeated
// diagnostic reporting, never for code-fix application.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// CachedResult is the on-disk payload for one file's parse outcome.
type CachedResult struct {
	Schema         uint16
	Diagnostics    []CachedDiagnostic
	Panicked       bool
	IsFlowLanguage bool
	ModuleKind     uint8
}

// OpenDiskCache initializes (creating if necessary) a disk cache at the
// standard XDG cache location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(contentHash [32]byte) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(contentHash[:])+".mp")
}

// Put serializes and atomically writes a payload to the disk cache.
func (c *DiskCache) Put(contentHash [32]byte, payload *CachedResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(contentHash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(contentHash [32]byte) (*CachedResult, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(contentHash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out CachedResult
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, err
	}
	if out.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// toCachedResult flattens a parse outcome into its cacheable shape.
func toCachedResult(bag *diag.Bag, ret ecmaparser.ParserReturn) *CachedResult {
	items := bag.Items()
	diags := make([]CachedDiagnostic, len(items))
	for i, d := range items {
		diags[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
	}
	return &CachedResult{
		Schema:         cacheSchemaVersion,
		Diagnostics:    diags,
		Panicked:       ret.Panicked,
		IsFlowLanguage: ret.IsFlowLanguage,
		ModuleKind:     uint8(ret.SourceType.ModuleKind),
	}
}

// fromCachedResult rebuilds a diag.Bag from a cached payload, rooted at the
// given file so spans still resolve through the caller's FileSet.
func fromCachedResult(cached *CachedResult, fileID source.FileID) *diag.Bag {
	bag := diag.NewBag(len(cached.Diagnostics) + 1)
	for _, d := range cached.Diagnostics {
		bag.Add(&diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary:  source.Span{File: fileID, Start: d.Start, End: d.End},
		})
	}
	return bag
}

func contentHash(content []byte) [32]byte {
	return sha256.Sum256(content)
}
