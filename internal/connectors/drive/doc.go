// Package drive fetches machine-generated captions for cloud-drive
// videos through the HTTP export endpoint.
//
// Authentication is a forwarded browser session cookie; there is no API
// token. When the direct fetch fails, the caller is expected to escalate
// to browser-driven capture, which lives outside this repository.
package drive
