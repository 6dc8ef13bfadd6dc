package embed_data

import _ "embed"

//go:embed signature_patterns.json
var SignaturePatterns []byte
