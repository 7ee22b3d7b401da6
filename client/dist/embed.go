// Package clientdist embeds the dashboard's thin browser client.
package clientdist

import _ "embed"

// DashboardJS is the thin client served at "/_dash/client.js". It applies
// render frames to the page, reports DOM events and answers frame requests.
//
//go:embed dashboard.js
var DashboardJS []byte
