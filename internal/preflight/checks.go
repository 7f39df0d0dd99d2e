package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"speechset/internal/annotations"
	"speechset/internal/store"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckDirectoryReadable verifies that the directory exists and can be listed.
func CheckDirectoryReadable(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "read ok")
}

func checkDirectory(name, path string, mode uint32, ok string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, ok)}
}

// TableLoader parses a table and returns its row count.
type TableLoader func(path string, opts annotations.ReadOptions) (int, error)

// CheckTable verifies that an annotation table is readable and parses with
// load, so a missing column surfaces before a build.
func CheckTable(name, path string, opts annotations.ReadOptions, load TableLoader) Result {
	if err := unix.Access(path, unix.R_OK); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	rows, err := load(path, opts)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d rows)", path, rows)}
}

// SpeechesRows loads the speeches table.
func SpeechesRows(path string, opts annotations.ReadOptions) (int, error) {
	speeches, err := annotations.LoadSpeeches(path, opts)
	if err != nil {
		return 0, err
	}
	return speeches.Len(), nil
}

// SpeechContentsRows loads the speech contents table.
func SpeechContentsRows(path string, opts annotations.ReadOptions) (int, error) {
	contents, err := annotations.LoadSpeechContents(path, opts)
	if err != nil {
		return 0, err
	}
	return contents.Len(), nil
}

// ContentMapRows loads the content map table.
func ContentMapRows(path string, opts annotations.ReadOptions) (int, error) {
	maps, err := annotations.LoadContentMaps(path, opts)
	if err != nil {
		return 0, err
	}
	return maps.Len(), nil
}

// CheckStore opens the state database, creating it when missing, and reports
// schema mismatches.
func CheckStore(ctx context.Context, path string) Result {
	const name = "State database"
	st, err := store.Open(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrSchemaMismatch) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: schema mismatch; remove the file to rebuild it)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer st.Close()
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d runs)", path, len(runs))}
}
