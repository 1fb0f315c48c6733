// Package gemini provides a minimal client for the Gemini generateContent
// REST API.
//
// # Request Shape
//
// GenerateContent posts contents, sampling parameters, and per-request
// safety settings to {base}/v1beta/{model}:generateContent with the API key
// in the x-goog-api-key header.
//
// # Response Handling
//
// Responses are decoded into GenerateResponse without interpretation.
// ExtractText tolerates missing fields at every level of the candidate ->
// content -> parts chain; a response with no usable text is not an error
// here. FinishReason decoding accepts both the REST string enum and the
// legacy numeric proto value.
//
// # Retry Behaviour
//
// None. The client issues exactly one HTTP request per call; the reply
// controller owns the attempt budget and backoff policy.
package gemini
