package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ecmaparser/internal/diag"
	"ecmaparser/internal/source"
	"ecmaparser/pkg/ecmaparser"
)

// sourceExtensions lists the file extensions ParseFiles walks; anything
// else is skipped. Ordered longest-suffix-first is not required since
// InferSourceType already checks `.d.ts` before `.ts`.
var sourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".mts", ".cts"}

func hasSourceExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasSourceExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseFilesOptions configures ParseFiles.
type ParseFilesOptions struct {
	Options ecmaparser.Options
	// Jobs bounds concurrency; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, is consulted before each parse and populated
	// after each miss. A hit skips parsing entirely and its Result has
	// Cached set with a nil Builder — callers that need the tree itself
	// must not enable caching, or must re-parse on a cache hit.
	Cache *DiskCache
}

// ParseFiles walks dir for recognized source extensions and parses each one
// under a bounded errgroup worker pool: index-based result slots (no mutex
// needed), errgroup.WithContext for first-error cancellation, and an
// optional content-hash disk cache consulted ahead of each parse.
func ParseFiles(ctx context.Context, dir string, opts ParseFilesOptions) (*source.FileSet, []Result, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))
	interner := source.NewInterner()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if loadErr, hadErr := loadErrors[path]; hadErr {
					bag := diag.NewBag(4096)
					bag.Add(&diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
					})
					results[i] = Result{Path: path, Bag: bag}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)
				st := InferSourceType(path)

				if opts.Cache != nil {
					if cached, hit, cacheErr := opts.Cache.Get(contentHash(file.Content)); cacheErr == nil && hit {
						results[i] = Result{
							Path:   path,
							FileID: fileID,
							Bag:    fromCachedResult(cached, fileID),
							Cached: true,
						}
						return nil
					}
				}

				p := ecmaparser.New(path, file.Content, st).WithOptions(opts.Options).WithInterner(interner)
				b, ret, bag := p.Parse()

				if opts.Cache != nil {
					_ = opts.Cache.Put(contentHash(file.Content), toCachedResult(bag, ret))
				}

				results[i] = Result{
					Path:    path,
					FileID:  fileID,
					Builder: b,
					Return:  ret,
					Bag:     bag,
				}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
