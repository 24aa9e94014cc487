package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/poi-extract/internal/config"
	"github.com/sells-group/poi-extract/internal/geojson"
	"github.com/sells-group/poi-extract/internal/poi"
	"github.com/sells-group/poi-extract/internal/shapefile"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "poi-extract <input> <output>",
	Short: "Classify and deduplicate map POIs",
	Long:  "Reads an open-mapping extract (GeoJSON or shapefile), classifies features into a small semantic category set, reduces geometry to representative points, deduplicates, and writes a clean point collection.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			return eris.Errorf("expected <input> <output>, got %d args", len(args))
		}
		return nil
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runExtract,
}

func runExtract(_ *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	features, err := loadFeatures(inPath)
	if err != nil {
		return err
	}

	out := poi.Extract(features)

	if err := geojson.Write(outPath, out); err != nil {
		return err
	}

	fmt.Printf("Wrote %d features -> %s\n", len(out), outPath)
	return nil
}

// loadFeatures dispatches on the input extension; everything that is not a
// shapefile is read as GeoJSON.
func loadFeatures(path string) ([]geojson.Feature, error) {
	if strings.EqualFold(filepath.Ext(path), ".shp") {
		return shapefile.Read(path)
	}
	return geojson.Read(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
