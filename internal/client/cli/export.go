package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/netx"
)

// Export asks the server for a snapshot of the account, downloads it from
// the returned presigned URL and stores it under the configured export
// directory.
func (a *App) Export(ctx context.Context) error {
	url, err := a.api.ExportNotes(ctx)
	if err != nil {
		fmt.Println("Export failed:", err)
		return err
	}

	data, err := netx.DownloadFromPresignedURL(url)
	if err != nil {
		fmt.Println("Download failed:", err)
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.ExportDir)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	name := fmt.Sprintf("notes-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Snapshot saved to", path)
	return nil
}
