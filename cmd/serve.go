package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/build"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/data"
)

const rebuildDebounce = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then serves the output
directory over HTTP. It watches the content, layouts and static directories and
rebuilds the site whenever something changes. Edits to the site file are
picked up on the next rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger.Info("performing initial build")
		if err := build.Run(ctx, appConfig, currentSite(), logger); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		filter := newWatchFilter(appConfig.SiteFile, appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir)
		for _, dir := range filter.roots {
			watchTree(watcher, dir)
		}
		if filter.siteFile != "" {
			// Editors often replace files on save, so watch the directory.
			if err := watcher.Add(filepath.Dir(filter.siteFile)); err != nil {
				logger.Warn("failed to watch site file", "file", filter.siteFile, "err", err)
			}
		}
		go watchLoop(ctx, watcher, filter)

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", serverPort),
			Handler:           siteHandler(appConfig.OutputDir, appConfig.BasePath),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		logger.Info("serving site", "dir", appConfig.OutputDir, "url", fmt.Sprintf("http://localhost:%d%s", serverPort, appConfig.Links("").Path()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

// watchTree adds root and every directory below it; fsnotify is not recursive.
func watchTree(watcher *fsnotify.Watcher, root string) {
	if root == "" {
		return
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Debug("directory not found, not watching", "dir", root)
		return
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn("error walking directory", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				logger.Warn("failed to watch directory", "path", path, "err", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("error setting up watch", "dir", root, "err", err)
	}
}

// watchFilter decides which file events trigger a rebuild: anything below
// one of the watched trees, or the site file itself.
type watchFilter struct {
	siteFile string
	roots    []string
}

func newWatchFilter(siteFile string, roots ...string) watchFilter {
	f := watchFilter{siteFile: absPath(siteFile)}
	for _, root := range roots {
		if root = absPath(root); root != "" {
			f.roots = append(f.roots, root)
		}
	}
	return f
}

func (f watchFilter) matches(name string) bool {
	name = absPath(name)
	if name == "" {
		return false
	}
	if name == f.siteFile {
		return true
	}
	for _, root := range f.roots {
		if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func absPath(name string) string {
	if name == "" {
		return ""
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return filepath.Clean(name)
	}
	return abs
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, filter watchFilter) {
	var building sync.Mutex
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !filter.matches(event.Name) {
				continue
			}
			logger.Info("change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				watchTree(watcher, event.Name)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				building.Lock()
				defer building.Unlock()
				logger.Info("rebuilding site")
				if _, err := data.ReloadSite(appConfig.SiteFile); err != nil {
					logger.Error("failed to reload site file, keeping previous values", "file", appConfig.SiteFile, "err", err)
				}
				if err := build.Run(ctx, appConfig, currentSite(), logger); err != nil {
					logger.Error("rebuild failed", "err", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

// siteHandler serves dir below basePath, matching the links the build generated.
func siteHandler(dir, basePath string) http.Handler {
	prefix := strings.TrimRight("/"+strings.Trim(basePath, "/"), "/")
	if prefix == "" {
		return noCache(dir)
	}
	return http.StripPrefix(prefix, noCache(dir))
}

// noCache serves dir without directory listings or client caching.
func noCache(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(r.URL.Path), "index.html")); os.IsNotExist(err) {
				notFound(w, r, dir)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request, dir string) {
	page, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 4321, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
