// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package imagestore uploads puzzle preview images.

The identifier service depends only on the Store interface:

	url, err := store.Upload(ctx, pngBytes, "BA78C6BF")

FSStore is the bundled implementation. It writes files under a directory,
picks the extension by sniffing the content (png, jpg, gif, webp, else bin),
and returns the public URL under the configured base:

	store, err := imagestore.NewFSStore("./images", "/images")
	mux.Handle("/images/*", http.StripPrefix("/images", store.Handler()))

Keys must be non-empty and may not contain path separators or dots.
*/
package imagestore
