package main

import (
	"context"
	"flag"
	"log"

	"github.com/yi-nology/campus_inventory/biz/service/reference"
	"github.com/yi-nology/campus_inventory/pkg/config"
	"github.com/yi-nology/campus_inventory/pkg/gcp"
	"github.com/yi-nology/campus_inventory/pkg/storage"
)

// 参照表检查脚本：加载 reference 配置并打印 sede/edificio 列表
// 使用方法：go run script/reference_check.go -config=./config.yaml

var configPath = flag.String("config", "./config.yaml", "配置文件路径")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	ctx := context.Background()
	var source reference.Source
	switch cfg.Reference.Source {
	case config.ReferenceSourceWorkbook:
		objects, err := storage.New(ctx, cfg.Storage, gcp.ClientOptions(cfg.Google.CredentialsFile)...)
		if err != nil {
			log.Fatalf("存储初始化失败: %v", err)
		}
		wb := cfg.Reference.Workbook
		source, err = reference.NewWorkbookSource(objects, reference.WorkbookConfig{
			Key:            wb.Key,
			Format:         wb.Format,
			Sheet:          wb.Sheet,
			SiteColumn:     wb.SiteColumn,
			BuildingColumn: wb.BuildingColumn,
		})
		if err != nil {
			log.Fatalf("参照工作簿配置无效: %v", err)
		}
	default:
		source = reference.NewStaticSource(cfg.Reference.Static)
	}

	log.Printf("========== 参照表: %s ==========", source.Name())
	provider := reference.NewProvider(source)
	sites, err := provider.ListSites(ctx)
	if err != nil {
		log.Fatalf("加载参照表失败: %v", err)
	}

	total := 0
	for _, site := range sites {
		buildings, err := provider.ListBuildings(ctx, site)
		if err != nil {
			log.Fatalf("加载 %s 的建筑失败: %v", site, err)
		}
		total += len(buildings)
		log.Printf("%s (%d): %v", site, len(buildings), buildings)
	}
	log.Printf("共 %d 个 sede, %d 个 edificio", len(sites), total)
}
