package cli

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Manage treebank data",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var url, dataFolder string
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download a treebank archive and extract its .conllu files",
		Example: `  lemmabase data download
  lemmabase data download --data-folder data/ewt
  lemmabase data download --url https://github.com/UniversalDependencies/UD_German-GSD/archive/refs/heads/master.tar.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("url") {
				url = c.cfg.Data.URL
			}
			if !cmd.Flags().Changed("data-folder") {
				dataFolder = c.cfg.Data.Folder
			}
			return dataDownload(url, dataFolder)
		},
	}
	downloadCmd.Flags().StringVar(&url, "url", "", "Treebank tar.gz URL (default from config)")
	downloadCmd.Flags().StringVar(&dataFolder, "data-folder", "data", "Destination folder for .conllu files")

	dataCmd.AddCommand(downloadCmd)
	return dataCmd
}

func dataDownload(url, dataFolder string) error {
	slog.Info("Downloading treebank", "url", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download data: HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(dataFolder, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dataFolder, err)
	}
	files, err := extractConllu(resp.Body, dataFolder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .conllu files in archive")
	}
	for _, f := range files {
		slog.Debug("Extracted", "file", f)
	}
	slog.Info("Treebank extracted", "files", len(files), "folder", dataFolder)
	return nil
}

// extractConllu writes every .conllu file of a gzipped tar stream into dir,
// flattening the archive's directory structure. It returns the written paths.
func extractConllu(r io.Reader, dir string) ([]string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer func() { _ = gr.Close() }()

	tr := tar.NewReader(gr)
	var written []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ".conllu") {
			continue
		}

		target := filepath.Join(dir, filepath.Base(hdr.Name))
		f, err := os.Create(target)
		if err != nil {
			return written, fmt.Errorf("create file %s: %w", target, err)
		}
		if _, err := io.Copy(f, tr); err != nil {
			_ = f.Close()
			return written, fmt.Errorf("write file %s: %w", target, err)
		}
		if err := f.Close(); err != nil {
			return written, fmt.Errorf("close file %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
