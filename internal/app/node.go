package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quire/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/compiler"           //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/depsfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/output"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/quire/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs besides the App itself.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.LoaderFactoryNodeID,
			fs.HasherNodeID,
			compiler.NodeID,
			cas.NodeID,
			output.NodeID,
			depsfile.NodeID,
			progrock.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.ProjectResolver](ctx)
	if err != nil {
		return nil, err
	}
	loaders, err := graft.Dep[ports.LoaderFactory](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	comp, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}
	out, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}
	deps, err := graft.Dep[ports.DepsWriter](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, loaders, hasher, comp, store, out, deps, telemetry, w, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
