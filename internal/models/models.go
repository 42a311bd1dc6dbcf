// internal/models/models.go
// Package models reports and manages the models installed on the Ollama host.
package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/localingo/internal/logging"
)

// Host is the model lifecycle surface of an Ollama server.
type Host interface {
	Host() string
	ListModels(ctx context.Context) ([]string, error)
	LoadedModels(ctx context.Context) ([]string, error)
	PullModel(ctx context.Context, model string) error
	UnloadModel(ctx context.Context, model string) error
}

// Matches reports whether an installed model name satisfies the configured
// model. A configured name without a tag matches its ":latest" variant.
func Matches(installed, configured string) bool {
	if installed == configured {
		return true
	}
	return !strings.Contains(configured, ":") && installed == configured+":latest"
}

// List prints every model installed on host, marking the configured model and
// the ones currently loaded in memory.
func List(ctx context.Context, out io.Writer, host Host, configured string) error {
	var (
		wg                 sync.WaitGroup
		installed, loaded  []string
		listErr, loadedErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		installed, listErr = host.ListModels(ctx)
	}()
	go func() {
		defer wg.Done()
		loaded, loadedErr = host.LoadedModels(ctx)
	}()
	wg.Wait()

	if listErr != nil {
		return fmt.Errorf("could not list models: Ollama is not accessible on %s: %w", host.Host(), listErr)
	}
	if loadedErr != nil {
		logging.LogEvent("[MODELS] could not read loaded models from %s: %v", host.Host(), loadedErr)
	}

	loadedSet := make(map[string]struct{}, len(loaded))
	for _, m := range loaded {
		loadedSet[m] = struct{}{}
	}
	sort.Strings(installed)

	nodeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	fmt.Fprintln(out, nodeStyle.Render(host.Host()+":"))
	found := false
	for _, name := range installed {
		line := "  >>> " + name
		if _, ok := loadedSet[name]; ok {
			line += " (loaded)"
		}
		if Matches(name, configured) {
			line += " *"
			found = true
		}
		fmt.Fprintln(out, line)
	}
	if len(installed) == 0 {
		fmt.Fprintln(out, "  (no models installed)")
	}
	if !found {
		fmt.Fprintf(out, "\nConfigured model %s is not installed. Run 'localingo models pull' to fetch it.\n", configured)
	}
	return nil
}

// Pull installs model on host.
func Pull(ctx context.Context, out io.Writer, host Host, model string) error {
	fmt.Fprintf(out, "Pulling %s on %s...\n", model, host.Host())
	if err := host.PullModel(ctx, model); err != nil {
		return fmt.Errorf("error pulling model %s on %s: %w", model, host.Host(), err)
	}
	fmt.Fprintf(out, "Model %s is ready.\n", model)
	return nil
}

// Unload evicts model from the host's memory.
func Unload(ctx context.Context, out io.Writer, host Host, model string) error {
	if err := host.UnloadModel(ctx, model); err != nil {
		return fmt.Errorf("error unloading model %s on %s: %w", model, host.Host(), err)
	}
	fmt.Fprintf(out, "Unloaded %s on %s.\n", model, host.Host())
	return nil
}
