package api

import "github.com/danielgtaylor/huma/v2"

// Transformers returns all response transformers used by the API.
// Transformers modify responses after handlers execute but before serialization.
// They are registered globally in the Huma config and run on all API responses.
//
// IMPORTANT: Order matters. Transformers execute sequentially, with each transformer's
// output becoming the next transformer's input.
//
// Each transformer should be defensive and check response types before operating,
// passing through responses it doesn't handle.
//
// Current transformers:
//   - hideHealthDetailsTransformer: Strips health details when showDetails is false.
func Transformers(showDetails bool) []huma.Transformer {
	if showDetails {
		return nil
	}

	return []huma.Transformer{
		hideHealthDetailsTransformer,
	}
}

// hideHealthDetailsTransformer removes diagnostic details from health responses.
func hideHealthDetailsTransformer(_ huma.Context, _ string, v any) (any, error) {
	// Huma passes the Body field to transformers, not the full response.
	body, ok := v.(Health)
	if !ok {
		return v, nil // Not our type, pass through.
	}

	body.Details = nil
	return body, nil
}
