package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotdeck/internal/server"
	"github.com/matzehuels/plotdeck/pkg/cache"
	"github.com/matzehuels/plotdeck/pkg/pipeline"
	"github.com/matzehuels/plotdeck/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	redis   string // Redis address for a shared cache; empty uses the file cache
	mongo   string // MongoDB URI for the chart store; empty uses memory
	mongoDB string
	noCache bool
}

// serveCommand creates the serve command for running the render API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the render API server",
		Long: `Serve runs the plotdeck render API. Datasets are posted inline to
/api/render and rendered through the same pipeline as the CLI. Rendered
charts are recorded and can be listed via /api/charts.

By default the server uses the local file cache and an in-memory chart
store. Point --redis and --mongo at shared backends to run multiple
instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address (host:port) for a shared cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for the chart store")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	ca, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	st, err := c.serveStore(ctx, opts)
	if err != nil {
		_ = ca.Close()
		return err
	}
	defer st.Close(context.Background())

	runner := pipeline.NewRunner(ca, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})
	return srv.Run(ctx)
}

func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		c.Logger.Info("using redis cache", "addr", opts.redis)
		return cache.NewRedisCache(ctx, opts.redis)
	}
	return newCache(false)
}

func (c *CLI) serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongo != "" {
		c.Logger.Info("using mongo chart store", "db", opts.mongoDB)
		return store.NewMongoStore(ctx, opts.mongo, opts.mongoDB)
	}
	return store.NewMemoryStore(), nil
}
