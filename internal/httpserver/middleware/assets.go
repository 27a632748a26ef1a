// Package middleware holds HTTP handlers and wrappers shared by the site router.
package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// AssetCacheControl is applied to every asset response.
const AssetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"

// AssetsWithCache serves files from fsys under prefix and applies
// Cache-Control, Vary and ETag handling. ETags are weak SHA-256 digests
// computed once at construction.
func AssetsWithCache(fsys fs.FS, prefix string) (http.Handler, error) {
	prefix = "/" + strings.Trim(prefix, "/")
	etags := map[string]string{}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		et, err := fileETag(fsys, path)
		if err != nil {
			return err
		}
		etags["/"+path] = et
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// only indexed files are served; directories never get a listing
		et, ok := etags[strings.TrimPrefix(r.URL.Path, prefix)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", AssetCacheControl)
		w.Header().Set("ETag", et)
		if etagMatches(r.Header.Get("If-None-Match"), et) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		files.ServeHTTP(w, r)
	}), nil
}

// etagMatches applies the weak comparison used for If-None-Match: a list of
// entity tags or "*".
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if candidate != "" && strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func fileETag(fsys fs.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
