package dedupe

// Package dedupe provides the shared singleflight group used to collapse
// duplicate concurrent move-classification requests. A double-submitted
// input (same session, same round, same text) results in a single OpenAI
// call; the other callers wait for and share the result.

import "golang.org/x/sync/singleflight"

// ClassifyGroup deduplicates judge calls keyed by
// "<session_id>:<round>:<raw_input>".
var ClassifyGroup singleflight.Group
