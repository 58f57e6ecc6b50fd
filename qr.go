package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// serveRoomQR generates a PNG QR code pointing a phone at the browser
// client with the room preselected, so a second player can be pulled in by
// scanning instead of typing.
func serveRoomQR(cfg *Config, registry *RoomRegistry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		name := ps.ByName("name")
		if name == "" {
			http.Error(w, "missing room name", http.StatusBadRequest)
			return
		}

		if _, err := registry.Lookup(name); errors.Is(err, ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		target := scheme + "://" + r.Host + strings.TrimSuffix(cfg.prefix, "/") + "/?room=" + url.QueryEscape(name)

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(target, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		logf(cfg, "SERVE: QR code for room %q to %s", name, realIP(r))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}
