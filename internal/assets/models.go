package assets

import _ "embed"

// ModelsData is the provider/model catalog behind the search page and the
// chat room. The first model listed for a provider is its chat default.
//
//go:embed models.json
var ModelsData []byte
