// Package imgproxy fetches remote product images on the browser's
// behalf so third-party hosts don't trip CORS/ORB blocking.
package imgproxy

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kirana/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var client = &http.Client{Timeout: 15 * time.Second}

// ProxyImage handles GET /api/proxy-image?url=...&w=...
// With ?w= the image is decoded and resized to that width; otherwise
// the upstream bytes are streamed untouched.
func ProxyImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	url := r.URL.Query().Get("url")
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image URL required")
		return
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image URL")
		return
	}

	resp, err := client.Get(url)
	if err != nil {
		log.Println("Error fetching image:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	width, _ := strconv.Atoi(r.URL.Query().Get("w"))
	if width <= 0 {
		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}
		w.Header().Set("Content-Type", contentType)
		io.Copy(w, resp.Body)
		return
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		log.Println("Failed to decode image:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode image")
		return
	}
	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	w.Header().Set("Content-Type", "image/jpeg")
	if err := imaging.Encode(w, resized, imaging.JPEG); err != nil {
		log.Println("Failed to encode image:", err)
	}
}
