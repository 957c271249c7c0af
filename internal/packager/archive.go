// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/MKhiriev/go-page-guard/models"
)

// WriteZip writes every file of pkg to w as a zip archive. Entries are
// written in name order with modTime as their timestamp, so the same package
// always yields the same bytes.
func WriteZip(w io.Writer, pkg models.ProtectedPackage, modTime time.Time) error {
	if len(pkg.ManifestFiles) == 0 {
		return fmt.Errorf("%w: package has no files", ErrInvalidRequest)
	}

	names := make([]string, 0, len(pkg.ManifestFiles))
	for name := range pkg.ManifestFiles {
		names = append(names, name)
	}
	slices.Sort(names)

	zw := zip.NewWriter(w)
	for _, name := range names {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modTime.UTC(),
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err = fw.Write(pkg.ManifestFiles[name]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return nil
}
