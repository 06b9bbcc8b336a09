// Package clientip extracts real client IP addresses from HTTP requests.
//
// Proxy headers are checked in priority order (CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. X-Forwarded-For chains resolve to the leftmost entry, all
// candidates are validated with net.ParseIP, and the unspecified address is
// rejected. The extracted IP feeds the geolocation chain.
package clientip
