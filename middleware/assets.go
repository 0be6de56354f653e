package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LandingAssets are the static files referenced by the landing layout
var LandingAssets = []string{
	"css/landing.css",
	"js/landing.js",
	"images/favicon.svg",
}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes under staticDir for cache busting at startup
func InitAssetVersions(staticDir string, assets ...string) {
	versions := make(map[string]string, len(assets))
	for _, asset := range assets {
		if version := computeFileHash(filepath.Join(staticDir, asset)); version != "" {
			versions[asset] = version
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d of %d files", len(versions), len(assets))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash for a static asset, or "1" when unknown.
// ctx keeps the signature in line with the other component helpers.
func GetAssetVersion(ctx context.Context, asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns /static/<asset>?v=<version>
func AssetURL(ctx context.Context, asset string) string {
	return "/static/" + asset + "?v=" + GetAssetVersion(ctx, asset)
}
