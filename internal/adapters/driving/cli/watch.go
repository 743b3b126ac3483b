package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctrace/internal/logger"
)

// watchDebounce is how long the document set must be quiet before a re-run.
var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate reports whenever a planning document changes",
	Long: `Writes both reports, then watches the planning documents and writes
them again after each change. Every run re-reads and re-analyses all
documents. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before regenerating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	svc, err := reportService(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p := printer(cmd)
	regenerate := func() {
		results, err := svc.RunAll(ctx)
		p.Print(results)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}

	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	targets := newWatchTargets(svc.WatchPaths())
	for _, dir := range targets.dirs() {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("cannot watch %s: %v", dir, err)
			continue
		}
		logger.Debug("watching %s", dir)
	}

	cmd.Println("Watching planning documents. Press Ctrl-C to stop.")
	return watchLoop(ctx, watcher.Events, watcher.Errors, targets, watchDebounce, regenerate)
}

// watchTargets matches filesystem events against the document paths.
type watchTargets struct {
	paths    map[string]bool
	patterns []string
}

func newWatchTargets(paths []string) *watchTargets {
	t := &watchTargets{paths: make(map[string]bool, len(paths))}
	for _, p := range paths {
		p = filepath.Clean(p)
		if strings.ContainsAny(filepath.ToSlash(p), "*?[{") {
			t.patterns = append(t.patterns, p)
		} else {
			t.paths[p] = true
		}
	}
	return t
}

// dirs returns the directories to subscribe to, sorted.
// Editors often replace files, so parent directories are watched.
func (t *watchTargets) dirs() []string {
	set := make(map[string]bool)
	for p := range t.paths {
		set[filepath.Dir(p)] = true
	}
	for _, pattern := range t.patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		set[filepath.FromSlash(base)] = true
	}

	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

func (t *watchTargets) matches(path string) bool {
	path = filepath.Clean(path)
	if t.paths[path] {
		return true
	}
	for _, pattern := range t.patterns {
		if ok, _ := doublestar.PathMatch(pattern, path); ok {
			return true
		}
	}
	return false
}

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// watchLoop calls regenerate once events for targets have been quiet for
// debounce. It returns when ctx is done or the event channel closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	targets *watchTargets,
	debounce time.Duration,
	regenerate func(),
) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Op&watchedOps == 0 || !targets.matches(ev.Name) {
				continue
			}
			logger.Debug("change detected: %s", ev)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			fire = nil
			regenerate()
		}
	}
}
