package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/quantmind-br/viteassets/internal/app"
	"github.com/quantmind-br/viteassets/internal/cache"
	"github.com/quantmind-br/viteassets/internal/config"
	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/output"
	"github.com/quantmind-br/viteassets/internal/planner"
	"github.com/quantmind-br/viteassets/internal/utils"
	"github.com/quantmind-br/viteassets/internal/watcher"
	"github.com/quantmind-br/viteassets/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Dependencies for testing
	osStat = os.Stat
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the global flags
type rootOptions struct {
	cfgFile  string
	manifest string
	root     string
	format   string
	output   string
	force    bool
	verbose  bool
	noCache  bool
	cacheTTL time.Duration
}

// assetOptions holds the flags of commands that add assets
type assetOptions struct {
	noCSS       bool
	inlineCSS   bool
	normalize   bool
	priority    bool
	scriptAttrs map[string]string
	cssAttrs    map[string]string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "viteassets",
		Short: "Resolve Vite build assets for server-rendered pages",
		Long: `viteassets reads the manifest.json written by a Vite build and resolves
entry points into the scripts and stylesheets a page has to load.

In development it points pages at a running Vite dev server instead, adding
the HMR client and the entry module.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.viteassets/config.yaml)")
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "Manifest path (default "+config.DefaultManifestPath+")")
	flags.StringVar(&opts.root, "root", "", "Web root that relative manifest paths are resolved against")
	flags.StringVarP(&opts.format, "format", "f", string(output.FormatJSON), "Output format (json, yaml)")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the result to a file instead of stdout")
	flags.BoolVar(&opts.force, "force", false, "Overwrite an existing output file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	// Cache flags
	flags.BoolVar(&opts.noCache, "no-cache", false, "Disable manifest caching")
	flags.DurationVar(&opts.cacheTTL, "cache-ttl", config.DefaultCacheTTL, "Cache TTL")

	// Dev server flags
	flags.String("dev-port", "", "Dev server port (overrides "+config.PortEnvVar+")")

	cmd.AddCommand(
		newEntryCmd(opts),
		newAssetsCmd(opts),
		newDevCmd(opts),
		newPathCmd(opts),
		newWatchCmd(opts),
		newDoctorCmd(opts),
		newConfigCmd(opts),
		newCacheCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// session is the configuration and service shared by one command run
type session struct {
	cfg    *config.Config
	viper  *viper.Viper
	svc    *app.Service
	logger *utils.Logger
}

// open loads the configuration, applies the global flags and creates the
// service. configure runs before the service is built.
func (o *rootOptions) open(cmd *cobra.Command, configure ...func(*config.Config)) (*session, error) {
	cfg, v, err := config.LoadWithViper(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest.Path = o.manifest
	}
	if flags.Changed("root") {
		cfg.Manifest.Root = o.root
	}
	if o.noCache {
		cfg.Cache.Enabled = false
	}
	if flags.Changed("cache-ttl") {
		cfg.Cache.TTL = o.cacheTTL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, fn := range configure {
		fn(cfg)
	}

	// The port is read from viper on every request, so the flag joins the
	// environment and config file there.
	if err := v.BindPFlag("dev_server.port", flags.Lookup("dev-port")); err != nil {
		return nil, err
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: o.verbose,
	})

	svc, err := app.NewService(app.ServiceOptions{
		Config:  cfg,
		Ports:   config.PortSource(v),
		Logger:  logger,
		Verbose: o.verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &session{cfg: cfg, viper: v, svc: svc, logger: logger}, nil
}

func (s *session) close() {
	if err := s.svc.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to close cache")
	}
}

// emit writes v to --output, or to stdout
func (o *rootOptions) emit(cmd *cobra.Command, v any) error {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return err
	}

	if o.output == "" {
		return output.NewWriter(output.WriterOptions{Format: format}).Encode(cmd.OutOrStdout(), v)
	}

	if !cmd.Flags().Changed("format") {
		format = output.FormatFromPath(o.output)
	}
	w := output.NewWriter(output.WriterOptions{Format: format, Force: o.force})
	return w.WriteFile(o.output, v)
}

func (a *assetOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&a.noCSS, "no-css", false, "Do not add the entry's stylesheets")
	flags.BoolVar(&a.inlineCSS, "inline-css", false, "Embed stylesheets by content")
	flags.BoolVar(&a.normalize, "normalize-charset", false, "Transcode inlined stylesheets to UTF-8")
	flags.BoolVar(&a.priority, "priority", false, "Add assets to the priority group")
	flags.StringToStringVar(&a.scriptAttrs, "script-attr", nil, "Script tag attribute (key=value)")
	flags.StringToStringVar(&a.cssAttrs, "css-attr", nil, "Stylesheet attribute (key=value)")
}

func (a *assetOptions) apply(cmd *cobra.Command, req *app.Request) {
	flags := cmd.Flags()
	if a.noCSS {
		req.AddCSS = false
	}
	if flags.Changed("inline-css") {
		req.InlineCSS = a.inlineCSS
	}
	if flags.Changed("normalize-charset") {
		req.NormalizeCharset = a.normalize
	}
	if flags.Changed("priority") {
		req.Asset.Priority = a.priority
	}
	req.Script = attributes(a.scriptAttrs)
	req.CSS = attributes(a.cssAttrs)
}

// attributes turns key=value flags into tag attributes. true and false
// become booleans so that false omits the attribute. Digits stay strings to
// keep numeric values such as tabindex=0.
func attributes(values map[string]string) planner.Attributes {
	attrs := make(planner.Attributes, len(values))
	for k, v := range values {
		if b, err := strconv.ParseBool(v); err == nil && v != "0" && v != "1" {
			attrs[k] = b
			continue
		}
		attrs[k] = v
	}
	return attrs
}

func newEntryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "entry",
		Short: "Print the manifest's only entry point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			entry, err := s.svc.DetectEntry(cmd.Context(), s.cfg.Manifest.Path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func newAssetsCmd(opts *rootOptions) *cobra.Command {
	assets := &assetOptions{}

	cmd := &cobra.Command{
		Use:   "assets [entry]",
		Short: "Resolve the production assets of an entry point",
		Long: `Resolves an entry point of the build manifest into its script and
stylesheets. Without an entry the manifest's only entry point is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			req := app.RequestFromConfig(s.cfg)
			if len(args) > 0 {
				req.Entry = args[0]
			}
			assets.apply(cmd, &req)

			return collect(cmd, opts, s, req)
		},
	}
	assets.register(cmd)
	return cmd
}

func newDevCmd(opts *rootOptions) *cobra.Command {
	assets := &assetOptions{}

	cmd := &cobra.Command{
		Use:   "dev <request-url> [entry]",
		Short: "Resolve the dev server assets for a page request",
		Long: `Resolves the HMR client and the entry module on the Vite dev server that
serves the page at request-url. The dev server listens on the request's
host, on the port set by --dev-port, ` + config.PortEnvVar + ` or 5173.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestURL, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid request URL: %w", err)
			}
			if requestURL.Scheme == "" || requestURL.Host == "" {
				return domain.NewValidationError("request-url", "scheme and host are required")
			}

			s, err := opts.open(cmd, func(cfg *config.Config) {
				cfg.DevServer.Enabled = true
			})
			if err != nil {
				return err
			}
			defer s.close()

			req := app.RequestFromConfig(s.cfg)
			req.RequestURL = requestURL
			if len(args) > 1 {
				req.Entry = args[1]
			}
			assets.apply(cmd, &req)

			return collect(cmd, opts, s, req)
		},
	}
	assets.register(cmd)
	return cmd
}

// collect adds the assets of req to a collector and emits its index
func collect(cmd *cobra.Command, opts *rootOptions, s *session, req app.Request) error {
	collector := output.NewAssetCollector()
	mode, _, err := s.svc.AddAssets(cmd.Context(), collector, req)
	if err != nil {
		return err
	}

	switch mode {
	case app.ModeDevServer:
		collector.SetSource(s.svc.DevServerBase(req.RequestURL).String())
	default:
		if path, err := s.svc.Store().Resolve(req.Manifest); err == nil {
			collector.SetSource(path)
		}
	}
	s.logger.Debug().Str("mode", string(mode)).Int("assets", collector.Count()).Msg("Assets collected")

	if opts.output == "" {
		return opts.emit(cmd, collector.Index())
	}
	writerOpts := output.WriterOptions{Force: opts.force}
	if cmd.Flags().Changed("format") {
		format, err := output.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		writerOpts.Format = format
	}
	return collector.Flush(opts.output, writerOpts)
}

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <asset>",
		Short: "Print the path of a built asset",
		Long: `Prints the emitted file of any manifest chunk. Files below --root are
printed as root-relative URL paths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			path, err := s.svc.AssetPath(cmd.Context(), s.cfg.Manifest.Path, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Drop the cached manifest whenever the build rewrites it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The session runs uncached and the shared cache is opened per
			// event, so other commands can use it while watch is running.
			var cacheOpts cache.Options
			s, err := opts.open(cmd, func(cfg *config.Config) {
				cacheOpts = app.CacheOptions(cfg)
				cfg.Cache.Enabled = false
			})
			if err != nil {
				return err
			}
			defer s.close()

			if cacheOpts.Backend == cache.BackendMemory {
				s.logger.Warn().Msg("Memory cache is process-local, nothing to invalidate for other processes")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st := s.svc.Store()
			path, err := st.Resolve(s.cfg.Manifest.Path)
			if err != nil {
				return err
			}
			if _, err := st.Load(ctx, path); err != nil {
				s.logger.Warn().Err(err).Str("manifest", path).Msg("Manifest not loadable yet")
			}

			out := cmd.OutOrStdout()
			w, err := watcher.New(path, cache.NewInvalidator(cacheOpts), watcher.Options{
				Logger: s.logger,
				OnInvalidate: func(path string, op fsnotify.Op, err error) {
					if err != nil {
						return
					}
					fmt.Fprintf(out, "invalidated %s (%s)\n", path, op)
				},
			})
			if err != nil {
				return fmt.Errorf("failed to watch manifest: %w", err)
			}

			s.logger.Info().Str("manifest", path).Msg("Watching manifest")
			err = w.Run(ctx)
			if errors.Is(err, context.Canceled) {
				s.logger.Info().Msg("Shutting down gracefully...")
				return nil
			}
			return err
		},
	}
}

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration and build manifest",
		Long:  "Verifies that the manifest can be loaded and reports the settings in effect.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			fmt.Fprintln(out, "Checking viteassets setup...")
			allPassed := true

			// Check 1: Config file
			fmt.Fprint(out, "  Config file: ")
			if used := s.viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "OK (%s)\n", used)
			} else {
				fmt.Fprintf(out, "NONE (using defaults, see %s)\n", config.ConfigFilePath())
			}

			// Check 2: Manifest
			fmt.Fprint(out, "  Manifest: ")
			m, err := s.svc.Store().Open(cmd.Context(), s.cfg.Manifest.Path)
			if err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				allPassed = false
			} else {
				fmt.Fprintf(out, "OK (%s, %d chunks)\n", m.Path(), m.Len())
			}

			// Check 3: Entry point detection
			fmt.Fprint(out, "  Entry point: ")
			if m != nil {
				if entry, err := s.svc.DetectEntry(cmd.Context(), s.cfg.Manifest.Path); err == nil {
					fmt.Fprintf(out, "OK (%s)\n", entry)
				} else {
					fmt.Fprintf(out, "WARN (%v)\n", err)
				}
			} else {
				fmt.Fprintln(out, "SKIPPED")
			}

			// Check 4: Dev server
			fmt.Fprint(out, "  Dev server: ")
			base := s.svc.DevServerBase(&url.URL{Scheme: "http", Host: "localhost"})
			if s.cfg.DevServer.Enabled {
				fmt.Fprintf(out, "ENABLED (%s)\n", base)
			} else {
				fmt.Fprintf(out, "DISABLED (%s)\n", base)
			}

			// Check 5: Cache
			fmt.Fprint(out, "  Cache: ")
			switch backend := s.cfg.CacheBackend(); backend {
			case "badger":
				dir := utils.ExpandPath(s.cfg.Cache.Directory)
				if checkCacheDir(dir) {
					fmt.Fprintf(out, "OK (badger, %s)\n", dir)
				} else {
					fmt.Fprintf(out, "WARN (badger, %s not created)\n", dir)
				}
			default:
				fmt.Fprintf(out, "OK (%s)\n", backend)
			}

			fmt.Fprintln(out)
			if allPassed {
				fmt.Fprintln(out, "All critical checks passed!")
			} else {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			return opts.emit(cmd, s.cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to ~/.viteassets/config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.output
			if path == "" {
				if err := config.EnsureConfigDir(); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
				path = config.ConfigFilePath()
			}

			if _, err := osStat(path); err == nil && !opts.force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			w := output.NewWriter(output.WriterOptions{Format: output.FormatYAML, Force: true})
			if err := w.WriteFile(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})

	return cmd
}

func newCacheCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the manifest cache",
	}

	inspector := func(s *session) (cache.Inspector, error) {
		c, ok := s.svc.Cache().(cache.Inspector)
		if !ok {
			return nil, fmt.Errorf("cache backend %q keeps no entries", s.cfg.CacheBackend())
		}
		return c, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			c, err := inspector(s)
			if err != nil {
				return err
			}
			stats := c.Stats()
			stats["backend"] = s.cfg.CacheBackend()
			return opts.emit(cmd, stats)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			c, err := inspector(s)
			if err != nil {
				return err
			}
			if err := c.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	})

	return cmd
}

// checkCacheDir checks if the cache directory exists
func checkCacheDir(path string) bool {
	info, err := osStat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
