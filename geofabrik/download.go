// Package geofabrik fetches country extracts from download.geofabrik.de.
package geofabrik

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

const SaudiArabiaURL = "https://download.geofabrik.de/asia/saudi-arabia-latest.osm.pbf"

// Download streams url into dest with a progress bar, unless the file is
// already there. Written through a .part file so an aborted download is
// never mistaken for a complete one.
func Download(ctx context.Context, url, dest string) error {
	log := slog.With("url", url, "dest", dest)

	if stat, err := os.Stat(dest); err == nil {
		log.Info("extract already downloaded", "size", humanize.Bytes(uint64(stat.Size())))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: status %d", url, res.StatusCode)
	}

	part := dest + ".part"
	file, err := os.Create(part)
	if err != nil {
		return err
	}

	bar := pb.Start64(res.ContentLength)
	bar.Set("prefix", "downloading extract")
	bar.Set(pb.Bytes, true)
	bar.SetRefreshRate(time.Second * 5)

	written, err := io.Copy(file, bar.NewProxyReader(res.Body))
	bar.Finish()
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(part)
		return fmt.Errorf("downloading %s: %w", url, err)
	}

	if err := os.Rename(part, dest); err != nil {
		return err
	}
	log.Info("extract downloaded", "size", humanize.Bytes(uint64(written)))
	return nil
}
