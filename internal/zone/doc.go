// Package zone is the HTTP client for the online card catalog site. It
// fetches pack listing pages, extracts (card detail URL, thumbnail URL)
// pairs from the card grid markup, and downloads card thumbnails as decoded
// images for fingerprinting.
package zone
