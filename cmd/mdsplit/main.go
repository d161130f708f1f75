package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"mdsplit/internal/config"
	"mdsplit/internal/crawler"
	"mdsplit/internal/episode"
	"mdsplit/internal/report"
	"mdsplit/internal/section"
	"mdsplit/internal/writer"
)

var (
	rootCmd = &cobra.Command{
		Use:   "mdsplit",
		Short: "Split markdown documents into sections and episode records",
	}
	configPath string
	outputDir  string
	outputFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	splitCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory for section files (overrides config)")
	episodesCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output path for the episodes JSON (overrides config)")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(summaryCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split one markdown file into per-section files",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		dir := cfg.Output.Dir
		if outputDir != "" {
			dir = outputDir
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read %s: %v", args[0], err)
		}

		fmt.Printf("📄 Splitting %s...\n", args[0])
		sections := section.NewSplitter().Parse(string(content))
		if len(sections) == 0 {
			fmt.Println("⚠️  Document is empty, nothing to write.")
			return
		}

		w := writer.NewSectionWriter(afero.NewOsFs())
		paths, err := w.WriteSections(dir, sections)
		if err != nil {
			log.Fatalf("Failed to write sections: %v", err)
		}
		for _, p := range paths {
			fmt.Printf("  -> %s\n", p)
		}

		fmt.Println()
		fmt.Print(report.Render(filepath.Base(args[0]), sections))
		fmt.Printf("✅ Wrote %d sections to %s\n", len(paths), dir)
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <path>...",
	Short: "Build episode records from markdown files or directories",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		out := cfg.Output.EpisodesFile
		if outputFile != "" {
			out = outputFile
		}

		builder := &episode.Builder{
			NamePrefix: cfg.Episode.NamePrefix,
			SourceDesc: cfg.Episode.SourceDesc,
		}
		splitter := section.NewSplitter()

		var episodes []episode.Episode
		docs := 0
		process := func(doc crawler.Document) {
			sections := splitter.Parse(doc.Content)
			if len(sections) == 0 {
				return
			}
			episodes = append(episodes, builder.FromSections(doc.Path, sections)...)
			docs++
		}

		c := crawler.NewCrawler()
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				log.Fatalf("Failed to stat %s: %v", arg, err)
			}
			if info.IsDir() {
				fmt.Printf("📂 Scanning %s...\n", arg)
				if err := c.Scan(arg, process); err != nil {
					log.Fatalf("Failed to scan %s: %v", arg, err)
				}
				continue
			}
			content, err := os.ReadFile(arg)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", arg, err)
			}
			process(crawler.Document{Path: arg, Content: string(content)})
		}

		if len(episodes) == 0 {
			fmt.Println("⚠️  No sections found, nothing to export.")
			return
		}

		fmt.Printf("💾 Saving %d episodes from %d documents...\n", len(episodes), docs)
		if err := episode.SaveEpisodes(out, episodes); err != nil {
			log.Fatalf("Failed to save episodes: %v", err)
		}

		fmt.Printf("✅ Episodes written to %s\n", out)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print a section overview of one markdown file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read %s: %v", args[0], err)
		}

		sections := section.NewSplitter().Parse(string(content))
		fmt.Print(report.Render(filepath.Base(args[0]), sections))
	},
}
