package api

import (
	"path/filepath"
	"strings"
)

// blockedExtensions are never accepted as media, whatever the declared type.
var blockedExtensions = map[string]bool{
	".exe":  true,
	".bat":  true,
	".cmd":  true,
	".com":  true,
	".msi":  true,
	".scr":  true,
	".sh":   true,
	".ps1":  true,
	".vbs":  true,
	".js":   true,
	".jar":  true,
	".php":  true,
	".html": true,
	".htm":  true,
	".svg":  true,
	".dll":  true,
	".so":   true,
}

// videoMIMETypes lists the declared types accepted before ffmpeg decides.
// Phones report .mov as video/quicktime, and some browsers send
// application/octet-stream for any large file.
var videoMIMETypes = map[string]bool{
	"video/mp4":                true,
	"video/quicktime":          true,
	"video/webm":               true,
	"video/x-matroska":         true,
	"video/x-msvideo":          true,
	"video/mpeg":               true,
	"video/3gpp":               true,
	"application/octet-stream": true,
}

func IsBlockedExtension(filename string) bool {
	return blockedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsAllowedVideoType checks a declared Content-Type, ignoring parameters.
// An empty type is allowed; the transcoder is the final judge.
func IsAllowedVideoType(mimeType string) bool {
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = mimeType[:idx]
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	return mimeType == "" || videoMIMETypes[mimeType]
}

// SanitizeFilename reduces a client filename to a safe base name for logs.
// Stored keys never use it.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	if idx := strings.LastIndex(filename, "\\"); idx != -1 {
		filename = filename[idx+1:]
	}

	var sanitized strings.Builder
	for _, r := range filename {
		if r >= 32 && r != 127 && !strings.ContainsRune(`/\:*?"<>|`, r) {
			sanitized.WriteRune(r)
		}
	}

	result := strings.Trim(sanitized.String(), ". ")
	if result == "" {
		return "unnamed_file"
	}
	if len(result) > 255 {
		ext := filepath.Ext(result)
		if len(ext) > 16 {
			ext = ""
		}
		result = result[:255-len(ext)] + ext
	}
	return result
}
