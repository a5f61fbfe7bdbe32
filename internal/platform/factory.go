package platform

import (
	"context"

	"github.com/aretw0/satchel/pkg/adapters/snapshot"
	"github.com/aretw0/satchel/pkg/assistant"
	"github.com/aretw0/satchel/pkg/core"
)

// New builds a ready-to-use assistant service on top of the snapshot file
// at path. The storage is initialized and the collections are loaded.
//
//	svc, err := satchel.New("~/.satchel/satchel.json", satchel.WithAutoInit(true))
func New(path string, opts ...Option) (*assistant.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		var err error
		repo, err = snapshot.NewRepository(snapshot.Config{
			Path:         path,
			AutoInit:     o.autoInit,
			MustExist:    o.mustExist,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
		if err != nil {
			return nil, err
		}
	}

	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	svc := assistant.NewService(repo, assistant.Config{
		Clock:       o.clock,
		Logger:      o.logger,
		CountryCode: o.countryCode,
	})
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}

// Init creates and initializes the repository without building a service.
// Exposed for callers that bring their own service wiring.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	repo, err := snapshot.NewRepository(snapshot.Config{
		Path:         path,
		AutoInit:     o.autoInit,
		MustExist:    o.mustExist,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})
	if err != nil {
		return nil, err
	}
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}
