package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapong/internal/config"
	"github.com/vovakirdan/chromapong/internal/notes"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List files in the assets directory",
	Long: `Lists every file in the note sample directory and marks the ones the
note bank will load.

Examples:
  chromapong assets
  chromapong assets --assets ./samples`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	dir := expandAssets(cfg.Audio.AssetsDir)

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fail("cannot read %s: %v", dir, err)
	}

	expected := make(map[string]bool, notes.Count)
	for _, k := range notes.AllKeys() {
		expected[notes.FileName(k, cfg.Audio.Extension)] = true
	}

	var files []fs.DirEntry
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e)
		}
	}
	if len(files) == 0 {
		fmt.Printf("No assets found in %s\n", dir)
		return
	}

	fmt.Printf("Assets in %s:\n\n", dir)
	matched := 0
	for _, f := range files {
		mark := " "
		if expected[f.Name()] {
			mark = "*"
			matched++
		}
		fmt.Printf("  %s %s\n", mark, f.Name())
	}
	fmt.Println()
	fmt.Printf("%d files, %d of %d note samples (*)\n", len(files), matched, notes.Count)
}

func expandAssets(dir string) string {
	if abs, err := filepath.Abs(config.ExpandPath(dir)); err == nil {
		return abs
	}
	return dir
}
