package cli

import (
	"fmt"
	"log"

	"github.com/loago/loago/internal/config"
	"github.com/loago/loago/internal/store"
	"github.com/loago/loago/internal/tasks"
)

// session is one invocation's view of the record: loaded once, saved at
// most once.
type session struct {
	cfg   *config.Config
	repo  store.Repo
	tasks *tasks.Store
}

func (o *options) openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Store.Path
	if o.file != "" {
		path = o.file
	}

	repo, err := store.Open(cfg.Store.Backend, path)
	if err != nil {
		return nil, err
	}

	records, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	log.Printf("loaded %d tasks from %s", len(records), repo.Path())

	return &session{
		cfg:   cfg,
		repo:  repo,
		tasks: tasks.FromMap(records, tasks.WithClock(o.clock)),
	}, nil
}

// save writes the record back if anything changed.
func (s *session) save() error {
	if !s.tasks.Dirty() {
		log.Printf("no changes, %s left untouched", s.repo.Path())
		return nil
	}
	if err := s.repo.Save(s.tasks.Map()); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	log.Printf("saved %d tasks to %s", s.tasks.Len(), s.repo.Path())
	return nil
}

func validateNames(names []string) error {
	for _, name := range names {
		if err := tasks.ValidateName(name); err != nil {
			return fmt.Errorf("invalid task name %q: %w", name, err)
		}
	}
	return nil
}

func warnMissing(s *session, names []string) {
	for _, name := range s.tasks.Missing(names...) {
		log.Printf("warning: no task named %q", name)
	}
}
