package utils

import "net/http"

// sniffLength defines the maximum number of bytes inspected when detecting content types.
const sniffLength = 512

// UnknownMimeType is reported when no content is available for sniffing.
const UnknownMimeType = "application/octet-stream"

// DetectMimeType returns the MIME type of the provided file prefix.
func DetectMimeType(data []byte) string {
	if len(data) == 0 {
		return UnknownMimeType
	}
	if len(data) > sniffLength {
		data = data[:sniffLength]
	}
	return http.DetectContentType(data)
}
