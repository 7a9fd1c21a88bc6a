package platform

// Package platform contains OS integration glue: handing a magnet URI to the
// platform's default torrent client. The core neither knows nor cares which
// client is installed.
