package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachePayload format changes
const diskCacheSchemaVersion uint16 = 1

// CacheKey is the SHA-256 of everything that influences a rendered line.
type CacheKey [sha256.Size]byte

// DiskCache хранит отрендеренные результаты строк на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is one cached line.
type CachePayload struct {
	Schema uint16 `msgpack:"schema"`
	Stage  string `msgpack:"stage"`
	Input  string `msgpack:"input"`
	Output string `msgpack:"output"`
	Failed bool   `msgpack:"failed"`
}

// OpenDiskCache initializes a disk cache rooted at dir, creating it if needed.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		return nil, errors.New("disk cache: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir is the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// KeyFor hashes a line together with the options that shape its output.
func KeyFor(line string, opts Options, render RenderOptions) CacheKey {
	h := sha256.New()
	fmt.Fprintf(h, "v%d\x00%s\x00%s\x00%t\x00%s\x00%t\x00%t\x00",
		diskCacheSchemaVersion, opts.Stage, opts.UnaryPlus, opts.Timings,
		render.Format, render.Color, render.ShowInfo)
	h.Write([]byte(normalizeLine(line)))
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "lines", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp) //nolint:errcheck
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload. Entries written under another schema
// version count as misses.
func (c *DiskCache) Get(key CacheKey, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("disk cache: corrupt entry: %w", err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every cached entry; the cache stays usable.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим, чтобы параллельный Get не увидел половину
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(c.dir, 0o755)
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
