// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package retriever

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Lexicon maps domain terms to their synonyms, e.g. mold defect aliases
// (披锋 → 飞边, flash). Queries are expanded with aliases before embedding
// and sparse encoding.
type Lexicon struct {
	mu      sync.RWMutex
	terms   map[string][]string // canonical term -> aliases
	domains map[string]string   // term -> domain hint for router fallback
	watcher *fsnotify.Watcher
}

type lexiconFile struct {
	Terms []struct {
		Term    string   `yaml:"term"`
		Domain  string   `yaml:"domain"`
		Aliases []string `yaml:"aliases"`
	} `yaml:"terms"`
}

// LoadLexicon reads a YAML lexicon. An empty path yields an empty lexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := &Lexicon{
		terms:   make(map[string][]string),
		domains: make(map[string]string),
	}
	if path == "" {
		return lex, nil
	}
	if err := lex.reload(path); err != nil {
		return nil, err
	}
	return lex, nil
}

// Watch reloads the lexicon when the file changes. Call Close to stop.
func (l *Lexicon) Watch(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create lexicon watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch lexicon file: %w", err)
	}
	l.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := l.reload(path); err != nil {
						slog.Warn("Lexicon reload failed", "path", path, "error", err)
					} else {
						slog.Info("Lexicon reloaded", "path", path)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("Lexicon watcher error", "error", err)
			}
		}
	}()

	return nil
}

// Close stops the file watcher, if any.
func (l *Lexicon) Close() error {
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

func (l *Lexicon) reload(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}

	var lf lexiconFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return fmt.Errorf("failed to parse lexicon: %w", err)
	}

	terms := make(map[string][]string, len(lf.Terms))
	domains := make(map[string]string)
	for _, t := range lf.Terms {
		terms[t.Term] = t.Aliases
		if t.Domain != "" {
			domains[strings.ToLower(t.Term)] = t.Domain
			for _, a := range t.Aliases {
				domains[strings.ToLower(a)] = t.Domain
			}
		}
	}

	l.mu.Lock()
	l.terms = terms
	l.domains = domains
	l.mu.Unlock()
	return nil
}

// Expand appends aliases of any lexicon term found in the query. The
// original query text always comes first.
func (l *Lexicon) Expand(query string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var extra []string
	for term, aliases := range l.terms {
		if strings.Contains(query, term) {
			extra = append(extra, aliases...)
		}
	}
	if len(extra) == 0 {
		return query
	}
	sort.Strings(extra)
	return query + " " + strings.Join(extra, " ")
}

// DomainOf returns the domain hint for a query that contains a lexicon
// term, or "" when none matches. Used by the router's parse-failure
// fallback.
func (l *Lexicon) DomainOf(query string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lower := strings.ToLower(query)
	for term, domain := range l.domains {
		if strings.Contains(lower, term) {
			return domain
		}
	}
	return ""
}
