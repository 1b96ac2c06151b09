package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/campus_inventory/biz/dal/store"
	"github.com/yi-nology/campus_inventory/biz/handler"
	"github.com/yi-nology/campus_inventory/biz/handler/version"
	"github.com/yi-nology/campus_inventory/biz/middleware"
	"github.com/yi-nology/campus_inventory/biz/router"
	"github.com/yi-nology/campus_inventory/biz/service/inventory"
	"github.com/yi-nology/campus_inventory/biz/service/reference"
	"github.com/yi-nology/campus_inventory/pkg/config"
	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/gcp"
	"github.com/yi-nology/campus_inventory/pkg/storage"
)

// Injected at build time with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	flag.Parse()

	version.AppVersion = Version
	version.AppGitCommit = GitCommit
	version.AppBuildTime = BuildTime

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	hlog.SetLevel(logLevel(cfg.Log.Level))

	ctx := context.Background()
	googleOpts := gcp.ClientOptions(cfg.Google.CredentialsFile)

	objects, err := storage.New(ctx, cfg.Storage, googleOpts...)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	records, closeStore, err := store.New(ctx, cfg.Store, googleOpts...)
	if err != nil {
		log.Fatalf("init record store: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			hlog.Errorf("close record store: %v", err)
		}
	}()

	source, err := referenceSource(cfg, objects)
	if err != nil {
		log.Fatalf("init reference data: %v", err)
	}
	provider := reference.NewProvider(source)

	vocab, err := constants.LookupVocabulary(cfg.Vocabulary.Variant, cfg.Vocabulary.PoorValue)
	if err != nil {
		log.Fatalf("vocabulary: %v", err)
	}

	svc := inventory.NewService(records, provider, vocab,
		inventory.WithStorage(objects),
		inventory.WithCacheTTL(cfg.Cache.TTL),
	)
	h := handler.NewInventoryHandler(svc, provider, objects)

	hlog.Infof("campus inventory %s (%s) store=%s reference=%s storage=%s vocabulary=%s",
		Version, GitCommit, cfg.Store.Backend, source.Name(), objects.Type(), vocab.Name)

	srv := server.Default(server.WithHostPorts(cfg.Server.Address))
	srv.Use(
		middleware.Recovery(),
		middleware.CORS(&cfg.CORS),
		middleware.Logging(),
	)
	router.RegisterInventoryRoutes(srv, h)
	router.RegisterMetricsRoute(srv, cfg.Metrics)

	srv.Spin()
}

func referenceSource(cfg *config.Config, objects storage.Storage) (reference.Source, error) {
	switch cfg.Reference.Source {
	case config.ReferenceSourceWorkbook:
		wb := cfg.Reference.Workbook
		return reference.NewWorkbookSource(objects, reference.WorkbookConfig{
			Key:            wb.Key,
			Format:         wb.Format,
			Sheet:          wb.Sheet,
			SiteColumn:     wb.SiteColumn,
			BuildingColumn: wb.BuildingColumn,
		})
	case config.ReferenceSourceStatic:
		return reference.NewStaticSource(cfg.Reference.Static), nil
	default:
		return nil, fmt.Errorf("unsupported reference source: %s", cfg.Reference.Source)
	}
}

func logLevel(level string) hlog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
