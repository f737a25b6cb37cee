package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ridoystarlord/drizzlegen/config"
	"github.com/ridoystarlord/drizzlegen/generator"
)

// watchDebounce groups the burst of events an editor produces on save.
const watchDebounce = 200 * time.Millisecond

// watch regenerates the schema once and then on every change to the inputs
// until ctx is done. Generation errors are reported and the watch goes on;
// the output file is left untouched until the inputs are valid again.
func watch(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	inputs := watchedInputs(cfg)
	// Directories are watched rather than files: editors often replace a
	// file on save, which drops a watch on the file itself.
	dirs := map[string]bool{}
	for file := range inputs {
		dir := filepath.Dir(file)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	regenerate(ctx, cfg, log)
	fmt.Println("👀 Watching for changes (Ctrl+C to stop)")

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !inputs[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("input changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			regenerate(ctx, cfg, log)
		}
	}
}

func watchedInputs(cfg config.Config) map[string]bool {
	inputs := map[string]bool{filepath.Clean(cfg.DMMF): true}
	if cfg.Schema != "" {
		inputs[filepath.Clean(cfg.Schema)] = true
	}
	return inputs
}

func regenerate(ctx context.Context, cfg config.Config, log *zap.Logger) {
	out, err := generate(ctx, cfg, log)
	if err != nil {
		color.Red("❌ %v", err)
		return
	}
	if err := generator.WriteOutput(cfg.Output, out); err != nil {
		color.Red("❌ %v", err)
		return
	}
	color.Green("✅ Schema generated: %s (%s)", cfg.Output, time.Now().Format(time.TimeOnly))
}
