package ports

// Watcher monitors a directory for file changes.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring dir (non-recursive). onChange is called with the
	// absolute path of each changed file and may be invoked from any goroutine.
	// Returns an error if the directory doesn't exist or can't be watched.
	Watch(dir string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
