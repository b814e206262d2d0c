// Package homebox implements the inventory API client used by asset-tag
// label printing.
//
// The flow is login → tag search → item fetch: POST /login exchanges
// credentials for a bearer token, GET /assets/{tag} lists matches (the
// first one wins), and GET /items/{id} returns the full record. The
// Authorization header carries the raw token because that is what the
// deployed service expects. Errors are translated into the shared taxonomy
// at each call site.
package homebox
